package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageType classifies an inbound contact message.
type MessageType string

const (
	MessageTypeGeneral   MessageType = "general"
	MessageTypeComplaint MessageType = "complaint"
	MessageTypeJob       MessageType = "job"
	MessageTypeInvestor  MessageType = "investor"
)

// String returns the string representation of the MessageType.
func (t MessageType) String() string {
	return string(t)
}

// IsValid checks if the MessageType is a valid value.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeGeneral, MessageTypeComplaint, MessageTypeJob, MessageTypeInvestor:
		return true
	default:
		return false
	}
}

// ContactMessage is a visitor-submitted message. It is created through the
// public contact form and mutated only by admin triage actions afterwards.
type ContactMessage struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	Body          string
	Type          MessageType
	ServiceType   string // Optional sub-service, free text.
	AttachmentURL string // Optional uploaded attachment reference.
	Read          bool
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
