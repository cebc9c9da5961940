package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/domain/service"
	mockRepo "stationhub/internal/mocks/repository"
	mockService "stationhub/internal/mocks/service"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	refreshRepo repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           newTestLogger(),
	})
}

func TestAuthService_SignIn_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "admin@example.com",
		Role:         entity.RoleAdmin,
		PasswordHash: "hashed",
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	hasher.EXPECT().Check("secret123", "hashed").Return(true)
	tokenService.EXPECT().GenerateTokens(userID, entity.RoleAdmin).Return("access-token", "refresh-token", nil)
	tokenService.EXPECT().RefreshTokenDuration().Return(7 * 24 * time.Hour)
	refreshRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, userID, token.UserID)
			assert.NotEqual(t, "refresh-token", token.TokenHash)
			assert.NotEmpty(t, token.TokenHash)
		}).
		Return(nil)

	out, err := svc.SignIn(ctx, &usecase.SignInInput{Email: "admin@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, userID, out.User.ID)
	assert.Empty(t, out.User.PasswordHash)
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hashed"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := svc.SignIn(ctx, &usecase.SignInInput{Email: "admin@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	_, err := svc.SignIn(ctx, &usecase.SignInInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SignIn_BannedAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "banned@example.com", PasswordHash: "hashed", Banned: true}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, "banned@example.com").Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	hasher.EXPECT().Check("secret123", "hashed").Return(true)

	_, err := svc.SignIn(ctx, &usecase.SignInInput{Email: "banned@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountBanned)
}

func TestAuthService_CheckSession_EmptyToken(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	state, err := svc.CheckSession(context.Background(), "")

	require.NoError(t, err)
	assert.False(t, state.Authenticated)
	assert.Nil(t, state.User)
}

func TestAuthService_CheckSession_InvalidToken(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	tokenService.EXPECT().ValidateAccessToken("garbage").Return(nil, assert.AnError)

	state, err := svc.CheckSession(context.Background(), "garbage")

	require.NoError(t, err)
	assert.False(t, state.Authenticated)
}

func TestAuthService_CheckSession_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "editor@example.com", Role: entity.RoleEditor, PasswordHash: "hashed"}

	tokenService.EXPECT().ValidateAccessToken("valid-token").Return(&service.Claims{UserID: userID, Role: entity.RoleEditor, Type: "access"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	state, err := svc.CheckSession(ctx, "valid-token")

	require.NoError(t, err)
	assert.True(t, state.Authenticated)
	assert.Equal(t, userID, state.User.ID)
	assert.Empty(t, state.User.PasswordHash)
}

func TestAuthService_CheckSession_BannedAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Banned: true}

	tokenService.EXPECT().ValidateAccessToken("valid-token").Return(&service.Claims{UserID: userID, Type: "access"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	state, err := svc.CheckSession(ctx, "valid-token")

	require.NoError(t, err)
	assert.False(t, state.Authenticated)
}

func TestAuthService_SignOut_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()

	tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{Type: "refresh"}, nil)
	refreshRepo.EXPECT().DeleteByTokenHash(ctx, hashRefreshToken("refresh-token")).Return(nil)

	err := svc.SignOut(ctx, &usecase.SignOutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}

func TestAuthService_SignOut_InvalidTokenStillSucceeds(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()

	tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, assert.AnError)
	refreshRepo.EXPECT().DeleteByTokenHash(ctx, hashRefreshToken("garbage")).Return(nil)

	err := svc.SignOut(ctx, &usecase.SignOutInput{RefreshToken: "garbage"})

	require.NoError(t, err)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleEditor, PasswordHash: "hashed"}
	stored := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefreshToken("refresh-token"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	tokenService.EXPECT().GenerateTokens(userID, entity.RoleEditor).Return("new-access", "unused-refresh", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().FindByTokenHash(ctx, stored.TokenHash).Return(stored, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	out, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, userID, out.User.ID)
	assert.Empty(t, out.User.PasswordHash)
}

func TestAuthService_Refresh_ExpiredToken(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefreshToken("refresh-token"),
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo).Maybe()
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().FindByTokenHash(ctx, stored.TokenHash).Return(stored, nil)
			mockRefreshRepo.EXPECT().DeleteByTokenHash(ctx, stored.TokenHash).Return(nil)

			return fn(mockFactory)
		})

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_BannedAccountRevokesSessions(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	svc := newAuthService(txManager, userRepo, refreshRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Banned: true}
	stored := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashRefreshToken("refresh-token"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

			mockRefreshRepo.EXPECT().FindByTokenHash(ctx, stored.TokenHash).Return(stored, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockRefreshRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	_, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountBanned)
}
