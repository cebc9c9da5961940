package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessageModel mirrors the 'contact_messages' table.
type ContactMessageModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(50)"`
	Body          string    `gorm:"type:text;not null"`
	Type          string    `gorm:"type:varchar(20);not null;index"`
	ServiceType   string    `gorm:"type:varchar(100)"`
	AttachmentURL string    `gorm:"type:text"`
	Read          bool      `gorm:"not null;default:false;index"`
	Archived      bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
