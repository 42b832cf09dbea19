package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"stockyard/internal/common"
	"stockyard/internal/repositories"
)

// TokenVerifier validates a bearer token and returns the identity
// provider subject it was issued to.
type TokenVerifier interface {
	Verify(tokenString string) (string, error)
}

// AuthMiddleware resolves bearer tokens into a local user with tenant
// context. Token validation is delegated to the identity provider's
// keys; the local users table decides whether the subject may act and
// on which tenant.
type AuthMiddleware struct {
	verifier TokenVerifier
	users    repositories.UserRepository
}

func NewAuthMiddleware(verifier TokenVerifier, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, users: users}
}

// Authenticate rejects requests without a valid token or without an
// active local user (401 in both cases, before any resource logic runs).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolve(c)
		if err != nil {
			return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		}
		c.SetRequest(c.Request().WithContext(common.WithAuthUser(c.Request().Context(), user)))
		return next(c)
	}
}

// OptionalAuthenticate attaches the user when the token is present and
// valid, and continues silently otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := m.resolve(c); err == nil {
			c.SetRequest(c.Request().WithContext(common.WithAuthUser(c.Request().Context(), user)))
		}
		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (*common.AuthUser, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.ErrUnauthorized
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, echo.ErrUnauthorized
	}

	subject, err := m.verifier.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := m.users.GetByAuthID(c.Request().Context(), subject)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, echo.ErrUnauthorized
	}

	return &common.AuthUser{
		UserID:   user.ID,
		TenantID: user.TenantID,
		AuthID:   user.AuthID,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}
