package auth

import (
	"testing"
	"time"

	"stationhub/config"
	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "access", claims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	// Refresh tokens deliberately carry no role.
	assert.Empty(t, refreshClaims.Role)
}

func TestJWTService_TokenTypeIsEnforced(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	access, refresh, err := svc.GenerateTokens(uuid.New(), entity.RoleEditor)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-access"
	otherCfg.SecretKey.Refresh = "other-refresh"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(uuid.New(), entity.RoleEditor)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	_, err := svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)
	assert.Equal(t, time.Hour, svc.RefreshTokenDuration())
}
