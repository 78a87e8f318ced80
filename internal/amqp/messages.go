package amqp

import (
	"encoding/json"
	"time"

	"github.com/sanduniwwijesinghe/MoneyManager/internal/core"
)

// NotificationMessage is the wire envelope for one notification event
// published after a balance recomputation. Published records when the event
// left the engine, CreatedAt when the policy produced it.
type NotificationMessage struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Published time.Time `json:"published"`
}

// NewNotificationMessage wraps a domain notification for publishing.
func NewNotificationMessage(n core.Notification) *NotificationMessage {
	return &NotificationMessage{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		Published: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *NotificationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// NotificationMessageFromJSON creates a message from JSON bytes
func NotificationMessageFromJSON(data []byte) (*NotificationMessage, error) {
	var msg NotificationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
