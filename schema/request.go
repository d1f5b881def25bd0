package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RequestStatus is the closed set of lifecycle states of a help request.
// Transitions are monotonic: open -> in_progress -> completed, and
// open|in_progress -> cancelled. Nothing leaves a terminal state.
type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestOpen, RequestInProgress, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave this state.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

// Attachments is a list of file references stored as a JSON text column.
type Attachments []string

func (a Attachments) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *Attachments) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}

	var source []byte
	switch v := src.(type) {
	case []byte:
		source = v
	case string:
		source = []byte(v)
	default:
		return errors.New("incompatible type for attachments")
	}
	return json.Unmarshal(source, a)
}

type HelpRequest struct {
	ID          uint          `json:"id" gorm:"primary_key"`
	Title       string        `json:"title"`
	Subject     string        `json:"subject"`
	Description string        `json:"description" gorm:"type:text"`
	Deadline    time.Time     `json:"deadline"`
	Budget      *float64      `json:"budget"`
	Status      RequestStatus `json:"status" gorm:"default:'open'"`
	AdvancePaid bool          `json:"advance_paid" gorm:"default:false"`
	Attachments Attachments   `json:"attachments" gorm:"type:text"`
	StudentID   uint          `json:"student_id"`
	HelperID    *uint         `json:"helper_id"`
	CreatedAt   time.Time     `json:"created_at"`
}
