package handler

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

func getSession(t *testing.T, h *AuthHandler, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.Session(e.NewContext(req, rec)))

	return rec
}

func TestAuthHandler_Session_Anonymous(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())

	uc.EXPECT().
		CheckSession(mock.Anything, "").
		Return(&entity.SessionState{Authenticated: false}, nil)

	rec := getSession(t, h, "")

	// Anonymous visitors get a definite answer, not a sign-in redirect.
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		response.Response
		Data entity.SessionState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Data.Authenticated)
	assert.Nil(t, body.Data.User)
}

func TestAuthHandler_Session_Authenticated(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc, newTestLogger())

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "editor@example.com",
		Name:         "Editor",
		Role:         entity.RoleEditor,
		PasswordHash: "$2a$10$secret",
	}
	uc.EXPECT().
		CheckSession(mock.Anything, "valid-token").
		Return(&entity.SessionState{Authenticated: true, User: user}, nil)

	rec := getSession(t, h, "Bearer valid-token")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		response.Response
		Data entity.SessionState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Authenticated)
	require.NotNil(t, body.Data.User)
	assert.Equal(t, "editor@example.com", body.Data.User.Email)
	assert.Empty(t, body.Data.User.PasswordHash)
}
