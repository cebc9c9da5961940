package entity

import (
	"time"

	"github.com/google/uuid"
)

// Partner is a brand shown in the public partners section.
type Partner struct {
	ID           uuid.UUID
	Name         string
	LogoURL      string
	WebsiteURL   string
	Active       bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
