package entity

import (
	"time"

	"github.com/google/uuid"
)

// Known content sections rendered by the public site.
const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionServices = "services"
	SectionContact  = "contact"
)

// Locales supported by the public site.
const (
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
)

// ContentBlock is one editable section of the public site in one locale.
// The body is free-form JSON owned by the section's renderer; the backend
// stores and serves it without interpreting the shape.
type ContentBlock struct {
	ID        uuid.UUID
	Section   string // One of the Section* constants, or a custom key.
	Locale    string // "ar" or "en".
	Body      []byte // JSON document.
	UpdatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidLocale reports whether the locale is one the site can render.
func IsValidLocale(locale string) bool {
	return locale == LocaleArabic || locale == LocaleEnglish
}
