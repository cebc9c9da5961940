package impl

import (
	"context"
	"log/slog"

	deliverycontext "stationhub/internal/delivery/context"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/domain/service"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		logger:           params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns all dashboard accounts, password hashes stripped.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	sanitized := make([]*entity.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	return sanitized, nil
}

// CreateUser validates and persists a new dashboard account.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Creating dashboard account", slog.String("email", input.Email), slog.Any("role", input.Role))

	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be editor or admin")
	}
	if input.Email == "" || input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and name are required")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Role:         input.Role,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Dashboard account created", slog.Any("userID", newUser.ID))

	return newUser.Sanitized(), nil
}

// UpdateUser modifies name or role of an existing account.
func (srv *userService) UpdateUser(ctx context.Context, actorID, targetID uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("role must be editor or admin")
		}
		// Role self-demotion would let the last admin lock everyone out.
		if actorID == targetID {
			return nil, errors.Wrap(domainerrors.ErrSelfTargetingForbidden, "cannot change own role")
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find account for update")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Role != nil {
			user.Role = *input.Role
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update account", slog.Any("targetID", targetID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Dashboard account updated", slog.Any("targetID", targetID), slog.Any("actorID", actorID))

	return updated.Sanitized(), nil
}

// SetUserBanned bans or unbans an account. Banning also revokes every
// session the account holds.
func (srv *userService) SetUserBanned(ctx context.Context, actorID, targetID uuid.UUID, banned bool) (*entity.User, error) {
	if actorID == targetID {
		return nil, errors.Wrap(domainerrors.ErrSelfTargetingForbidden, "cannot ban own account")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find account for ban")
		}

		user.Banned = banned
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update ban flag")
		}

		if banned {
			if err := repoFactory.RefreshTokenRepo().DeleteByUserID(ctx, targetID); err != nil {
				return errors.Wrap(err, "failed to revoke sessions of banned account")
			}
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to set ban flag", slog.Any("targetID", targetID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Ban flag set",
		slog.Any("targetID", targetID), slog.Any("actorID", actorID), slog.Bool("banned", banned))

	return updated.Sanitized(), nil
}

// ResetUserPassword sets a new password on an account and revokes its
// sessions so old tokens stop working.
func (srv *userService) ResetUserPassword(ctx context.Context, targetID uuid.UUID, newPassword string) error {
	if err := srv.hasher.ValidatePasswordStrength(newPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find account for password reset")
		}

		user.PasswordHash = hashedPassword
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		return repoFactory.RefreshTokenRepo().DeleteByUserID(ctx, targetID)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to reset password", slog.Any("targetID", targetID), slog.Any("error", err))

		return err
	}
	srv.log(ctx).Info("Password reset", slog.Any("targetID", targetID))

	return nil
}

// DeleteUser removes an account permanently. Sessions go with it through
// the foreign-key cascade.
func (srv *userService) DeleteUser(ctx context.Context, actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return errors.Wrap(domainerrors.ErrSelfTargetingForbidden, "cannot delete own account")
	}

	if err := srv.userRepo.Delete(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete account")
	}
	srv.log(ctx).Info("Dashboard account deleted", slog.Any("targetID", targetID), slog.Any("actorID", actorID))

	return nil
}
