package middleware

import (
	"strings"

	"stationhub/internal/delivery/http/response"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUserKey is the echo.Context key under which Authenticate stores
// the signed-in account.
const currentUserKey = "currentUser"

// AuthMiddleware gates dashboard routes behind a valid session.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the bearer token to a session. Requests without a
// session get 401 with the requested path echoed back for the sign-in
// redirect; they never get 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := BearerToken(c)

		state, err := m.authUC.CheckSession(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}
		if !state.Authenticated {
			return response.Unauthorized(c,
				domainerrors.ErrNotAuthenticated.ErrorCode(),
				domainerrors.ErrNotAuthenticated.Message())
		}

		c.Set(currentUserKey, state.User)

		return next(c)
	}
}

// RequireRole allows only accounts whose role ranks at or above the given
// one. It must run after Authenticate; a signed-in account that falls
// short gets 403, never 401.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return response.Forbidden(c,
					domainerrors.ErrInsufficientRole.ErrorCode(),
					"Permission denied: session information missing")
			}

			if !user.Role.AtLeast(required) {
				return response.Forbidden(c,
					domainerrors.ErrInsufficientRole.ErrorCode(),
					domainerrors.ErrInsufficientRole.Message())
			}

			return next(c)
		}
	}
}

// CurrentUser returns the account Authenticate stored on the context.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(currentUserKey).(*entity.User)

	return user, ok
}

// BearerToken extracts the access token from the Authorization header.
// An empty result resolves like an absent session downstream.
func BearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		// Missing or malformed header resolves like an absent session.
		return ""
	}

	return tokenString
}
