package usecase

import (
	"context"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create a dashboard account.
type CreateUserInput struct {
	Email    string      `json:"email" validate:"required,email"`
	Name     string      `json:"name" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required"`
}

// UpdateUserInput defines the editable fields of a dashboard account.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	Name *string      `json:"name"`
	Role *entity.Role `json:"role"`
}

// UserUsecase defines account management, restricted to admins. The
// actorID on destructive operations is the admin performing the action;
// accounts cannot target themselves.
type UserUsecase interface {
	// ListUsers returns all dashboard accounts, password hashes stripped.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// CreateUser validates and persists a new account.
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	// UpdateUser modifies name or role of an existing account. An admin
	// cannot change their own role.
	UpdateUser(ctx context.Context, actorID, targetID uuid.UUID, input *UpdateUserInput) (*entity.User, error)

	// SetUserBanned bans or unbans an account and, when banning, revokes
	// its sessions. An admin cannot ban themselves.
	SetUserBanned(ctx context.Context, actorID, targetID uuid.UUID, banned bool) (*entity.User, error)

	// ResetUserPassword sets a new password on an account and revokes its
	// sessions.
	ResetUserPassword(ctx context.Context, targetID uuid.UUID, newPassword string) error

	// DeleteUser removes an account permanently. An admin cannot delete
	// themselves.
	DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error
}
