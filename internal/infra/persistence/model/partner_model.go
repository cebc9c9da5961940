package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnerModel mirrors the 'partners' table.
type PartnerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	LogoURL      string    `gorm:"type:text"`
	WebsiteURL   string    `gorm:"type:text"`
	Active       bool      `gorm:"not null;default:true"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}
