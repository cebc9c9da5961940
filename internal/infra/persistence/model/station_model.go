// Package model holds the GORM persistence structs mirroring the database
// tables. They are kept separate from the domain entities so schema
// concerns never leak into business logic.
package model

import (
	"time"

	"github.com/google/uuid"
)

// StationModel mirrors the 'stations' table.
type StationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	NameEN       string    `gorm:"type:varchar(255);not null"`
	NameAR       string    `gorm:"type:varchar(255);not null"`
	Region       string    `gorm:"type:varchar(100);not null;index"`
	City         string    `gorm:"type:varchar(100)"`
	Address      string    `gorm:"type:text"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	Phone        string    `gorm:"type:varchar(50)"`
	Products     []string  `gorm:"type:jsonb;serializer:json"`
	Services     []string  `gorm:"type:jsonb;serializer:json"`
	MapLink      string    `gorm:"type:text"`
	Active       bool      `gorm:"not null;default:true;index"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StationModel) TableName() string {
	return "stations"
}
