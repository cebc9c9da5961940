// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"stationhub/internal/domain/entity"
)

// --- Input DTOs ---

// SignInInput defines the credentials for a dashboard sign-in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignOutInput carries the refresh token of the session being ended.
type SignOutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshInput carries the refresh token used to mint a new access token.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// SignInOutput returns the generated tokens after a successful sign-in.
type SignInOutput struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// RefreshOutput returns the new access token. The refresh token itself is
// not rotated.
type RefreshOutput struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}

// AuthUsecase defines the session operations for dashboard accounts.
// This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// SignIn verifies credentials and opens a session. Banned accounts and
	// bad credentials both fail; the caller cannot tell which.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// SignOut ends the session for the given refresh token. It succeeds
	// even when the token is already invalid or unknown.
	SignOut(ctx context.Context, input *SignOutInput) error

	// CheckSession resolves an access token to its account. An empty or
	// invalid token resolves to the unauthenticated state, not an error.
	CheckSession(ctx context.Context, accessToken string) (*entity.SessionState, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)
}
