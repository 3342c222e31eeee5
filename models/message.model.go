package models

import "time"

// Message statuses set by admin moderation.
const (
	MessagePending  = "pending"
	MessageAccepted = "accepted"
	MessageRejected = "rejected"
)

// Message is a persisted instructor application submitted through the
// storefront. Plain contact form submissions are logged, not stored.
type Message struct {
	ID         uint      `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Expertise  string    `json:"expertise,omitempty"`
	Experience string    `json:"experience,omitempty"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (m Message) GetID() uint { return m.ID }
