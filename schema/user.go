package schema

import (
	"time"
)

// UserRole is a closed set of roles. Authorization checks switch over it
// exhaustively so that adding a role surfaces every gate that needs a
// decision.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleHelper  UserRole = "helper"
	RoleAdmin   UserRole = "admin"
)

// Valid reports whether a role is one of the known variants.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleHelper, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             uint      `json:"id" gorm:"primary_key"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"unique_index"`
	HashedPassword string    `json:"-"`
	Role           UserRole  `json:"role"`
	PhoneNumber    string    `json:"phone_number"`
	Rating         float64   `json:"rating" gorm:"default:0"`
	CompletedTasks int       `json:"completed_tasks" gorm:"default:0"`
	IsSuspended    bool      `json:"is_suspended" gorm:"default:false"`
	IsVerified     bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at"`
}
