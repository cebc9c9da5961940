package repository

import (
	"context"
	"errors"
	"time"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no stored session matches.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists long-lived dashboard sessions.
type RefreshTokenRepository interface {
	// Create stores a new session record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByTokenHash retrieves a session by the SHA-256 hash of its raw token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByTokenHash revokes a single session.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID revokes every session belonging to an account.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes sessions that expired before the given time and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
