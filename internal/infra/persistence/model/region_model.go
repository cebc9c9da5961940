package model

import (
	"time"

	"github.com/google/uuid"
)

// RegionModel mirrors the 'regions' table.
type RegionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NameEN       string    `gorm:"type:varchar(100);not null"`
	NameAR       string    `gorm:"type:varchar(100);not null"`
	Slug         string    `gorm:"type:varchar(100);unique;not null"`
	Active       bool      `gorm:"not null;default:true"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}
