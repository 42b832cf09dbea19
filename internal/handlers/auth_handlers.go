package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"stockyard/internal/common"
	"stockyard/internal/identity"
	"stockyard/internal/services"
)

type AuthHandlers struct {
	auth services.AuthService
}

func NewAuthHandlers(auth services.AuthService) *AuthHandlers {
	return &AuthHandlers{auth: auth}
}

// Register wires the unauthenticated auth routes; Me is registered
// separately behind the auth middleware. The rate limiter guards only
// the password grant.
func (h *AuthHandlers) Register(g *echo.Group, loginLimiter echo.MiddlewareFunc) {
	g.POST("/auth/login", h.Login, loginLimiter)
	g.POST("/auth/refresh", h.Refresh)
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/oauth/:provider", h.OAuthURL)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandlers) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.RespondServiceError(c, err)
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondAuthError(c, err)
	}

	return common.RespondData(c, http.StatusOK, map[string]any{
		"tokens": result.Tokens,
		"user":   toUserResponse(result.User),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (h *AuthHandlers) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.RespondServiceError(c, err)
	}

	tokens, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondAuthError(c, err)
	}
	return common.RespondData(c, http.StatusOK, tokens)
}

func (h *AuthHandlers) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return respondAuthError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "logged out")
}

func (h *AuthHandlers) Me(c echo.Context) error {
	user, err := h.auth.Profile(c.Request().Context())
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandlers) OAuthURL(c echo.Context) error {
	url, err := h.auth.OAuthURL(c.Param("provider"), c.QueryParam("redirect_to"))
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, map[string]string{"url": url})
}

// respondAuthError keeps credential failures at 401 with the provider's
// message; everything else falls through to the standard taxonomy.
func respondAuthError(c echo.Context, err error) error {
	var providerErr *identity.ProviderError
	if errors.As(err, &providerErr) {
		status := providerErr.StatusCode
		if status < 400 || status > 499 {
			status = http.StatusUnauthorized
		}
		return common.RespondError(c, status, providerErr.Message)
	}
	var notFoundErr *common.NotFoundError
	if errors.As(err, &notFoundErr) {
		// No active local user behind a valid provider account.
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}
	return common.RespondServiceError(c, err)
}
