package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stationhub/internal/delivery/http/response"
	"stationhub/internal/domain/entity"
	mockUsecase "stationhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func runRequest(t *testing.T, h echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stations?page=2", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h(e.NewContext(req, rec)))

	return rec
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	authUC.EXPECT().
		CheckSession(mock.Anything, "").
		Return(&entity.SessionState{Authenticated: false}, nil)

	rec := runRequest(t, m.Authenticate(okHandler), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/api/admin/stations?page=2", body.RedirectTo)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	authUC.EXPECT().
		CheckSession(mock.Anything, "stale-token").
		Return(&entity.SessionState{Authenticated: false}, nil)

	rec := runRequest(t, m.Authenticate(okHandler), "Bearer stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_ValidSession(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleEditor}
	authUC.EXPECT().
		CheckSession(mock.Anything, "good-token").
		Return(&entity.SessionState{Authenticated: true, User: user}, nil)

	handler := m.Authenticate(func(c echo.Context) error {
		got, ok := CurrentUser(c)
		require.True(t, ok)
		assert.Equal(t, user.ID, got.ID)

		return c.String(http.StatusOK, "ok")
	})

	rec := runRequest(t, handler, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_EditorBlockedFromAdmin(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleEditor}
	authUC.EXPECT().
		CheckSession(mock.Anything, "editor-token").
		Return(&entity.SessionState{Authenticated: true, User: user}, nil)

	handler := m.Authenticate(m.RequireRole(entity.RoleAdmin)(okHandler))

	rec := runRequest(t, handler, "Bearer editor-token")

	// A signed-in account that falls short on role gets 403, not 401.
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.RedirectTo)
}

func TestAuthMiddleware_RequireRole_AdminPassesEditorGate(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}
	authUC.EXPECT().
		CheckSession(mock.Anything, "admin-token").
		Return(&entity.SessionState{Authenticated: true, User: user}, nil)

	handler := m.Authenticate(m.RequireRole(entity.RoleEditor)(okHandler))

	rec := runRequest(t, handler, "Bearer admin-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}
