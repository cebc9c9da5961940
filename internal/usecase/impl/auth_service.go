// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "stationhub/internal/delivery/context"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/domain/service"
	"stationhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashRefreshToken derives the storage key for a raw refresh token. Only
// the hash is persisted, so a database leak does not leak usable tokens.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// SignIn verifies credentials and opens a session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", input.Email))

	user, err := srv.loadSignInUser(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	if user.Banned {
		srv.log(ctx).Warn("Sign-in rejected for banned account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountBanned, "sign-in failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefreshToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, newRefreshToken); err != nil {
		srv.log(ctx).Error("Failed to store refresh token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh token during sign-in")
	}

	srv.log(ctx).Debug("Signed in successfully", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user.Sanitized(),
	}, nil
}

func (srv *authService) loadSignInUser(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User

	// Load the account from primary in a short transaction to avoid stale
	// reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

// SignOut ends the session for the given refresh token. Invalid tokens are
// not an error: the outcome the caller wants (no live session) holds either way.
func (srv *authService) SignOut(ctx context.Context, input *usecase.SignOutInput) error {
	srv.log(ctx).Info("Attempting to sign out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		srv.log(ctx).Warn("Sign-out with invalid token", slog.Any("error", err))
	}

	tokenHash := hashRefreshToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully signed out")

	return nil
}

// CheckSession resolves an access token to its account. Missing, malformed
// or expired tokens resolve to the unauthenticated state rather than an error,
// so callers can branch on one field.
func (srv *authService) CheckSession(ctx context.Context, accessToken string) (*entity.SessionState, error) {
	unauthenticated := &entity.SessionState{Authenticated: false}

	if accessToken == "" {
		return unauthenticated, nil
	}

	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Session check with invalid token", slog.Any("error", err))

		return unauthenticated, nil
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return unauthenticated, nil
		}

		return nil, errors.Wrap(err, "failed to load account for session check")
	}

	if user.Banned {
		srv.log(ctx).Warn("Session check for banned account", slog.Any("userID", user.ID))

		return unauthenticated, nil
	}

	return &entity.SessionState{
		Authenticated: true,
		User:          user.Sanitized(),
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var newAccessToken string
	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()
		userRepo := repoFactory.UserRepo()

		tokenHash := hashRefreshToken(input.RefreshToken)

		stored, findErr := refreshRepo.FindByTokenHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found")
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}
		if stored.Expired(time.Now()) {
			// Expired sessions are cleaned up lazily on use.
			if deleteErr := refreshRepo.DeleteByTokenHash(ctx, tokenHash); deleteErr != nil {
				srv.log(ctx).Warn("Failed to remove expired refresh token", slog.Any("error", deleteErr))
			}

			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token expired")
		}

		var userErr error
		user, userErr = userRepo.FindByID(ctx, claims.UserID)
		if userErr != nil {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account for refresh token not found")
		}
		if user.Banned {
			// Revoke the whole session set so a banned account cannot
			// keep minting access tokens.
			if deleteErr := refreshRepo.DeleteByUserID(ctx, user.ID); deleteErr != nil {
				return errors.Wrap(deleteErr, "failed to revoke sessions of banned account")
			}

			return errors.Wrap(domainerrors.ErrAccountBanned, "refresh rejected for banned account")
		}

		// Only a new access token is generated; the refresh token stays
		// valid and unchanged.
		var genErr error
		newAccessToken, _, genErr = srv.tokenService.GenerateTokens(user.ID, user.Role)
		if genErr != nil {
			return errors.Wrap(genErr, "failed to generate new access token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, err
	}

	return &usecase.RefreshOutput{
		AccessToken: newAccessToken,
		User:        user.Sanitized(),
	}, nil
}
