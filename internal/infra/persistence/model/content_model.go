package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentBlockModel mirrors the 'content_blocks' table. One row per section
// per locale; the body is stored as raw JSON.
type ContentBlockModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Section   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_content_section_locale"`
	Locale    string    `gorm:"type:varchar(5);not null;uniqueIndex:idx_content_section_locale"`
	Body      []byte    `gorm:"type:jsonb;not null"`
	UpdatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentBlockModel) TableName() string {
	return "content_blocks"
}
