package schema

import "time"

// ActivityLog records an admin-initiated mutation for auditing. Writing it is
// a compliance side effect, not a precondition of the primary mutation.
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	UserID    uint      `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp"`
}
