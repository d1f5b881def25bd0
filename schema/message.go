package schema

import "time"

// Message is an append-only chat entry scoped to one help request.
type Message struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	RequestID uint      `json:"request_id"`
	SenderID  uint      `json:"sender_id"`
	Content   string    `json:"content" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp"`
}
