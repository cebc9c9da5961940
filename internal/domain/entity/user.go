// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a dashboard account. Visitors of the public site are anonymous;
// only staff who edit content are represented here.
type User struct {
	ID           uuid.UUID `json:"id"`         // The unique identifier for the account.
	Email        string    `json:"email"`      // Login identifier; unique across accounts.
	Name         string    `json:"name"`       // Display name shown in the dashboard.
	Role         Role      `json:"role"`       // Exactly one of RoleEditor or RoleAdmin.
	PasswordHash string    `json:"-"`          // bcrypt hash of the account password.
	Banned       bool      `json:"banned"`     // A banned account cannot sign in.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of account creation.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// Sanitized returns a copy of the user safe for API responses,
// with the password hash stripped.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""

	return &clone
}
