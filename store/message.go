package store

import (
	"fmt"
	"time"

	"github.com/acadmate/acadmate-api/schema"
)

var ErrMessageNotFound = fmt.Errorf("the message does not exist")

// CreateMessage appends a chat message to a request's durable log. The parent
// request must still exist; messages are never attached to a deleted request.
func (s *AcadmateStore) CreateMessage(requestID, senderID uint, content string) (*schema.Message, error) {
	if _, err := s.GetRequest(requestID); err != nil {
		return nil, err
	}

	msg := schema.Message{
		RequestID: requestID,
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}

	if err := s.ormDB.Create(&msg).Error; err != nil {
		return nil, err
	}

	return &msg, nil
}

// ListMessages returns the full history of a request's room in send order.
func (s *AcadmateStore) ListMessages(requestID uint) ([]schema.Message, error) {
	msgs := []schema.Message{}

	if err := s.ormDB.
		Where("request_id = ?", requestID).
		Order("timestamp asc").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	return msgs, nil
}

// DeleteMessage removes a message. Only the admin moderation surface calls
// this; the chat itself is append-only.
func (s *AcadmateStore) DeleteMessage(messageID uint) error {
	result := s.ormDB.Delete(schema.Message{}, "id = ?", messageID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
