package services

import (
	"context"

	"stockyard/internal/common"
	"stockyard/internal/identity"
	"stockyard/internal/models"
	"stockyard/internal/repositories"
)

// IdentityProvider is the slice of the external provider the auth flow
// needs; the concrete client lives in the identity package.
type IdentityProvider interface {
	PasswordGrant(ctx context.Context, email, password string) (*identity.TokenResponse, error)
	RefreshGrant(ctx context.Context, refreshToken string) (*identity.TokenResponse, error)
	Revoke(ctx context.Context, accessToken string) error
	AuthorizeURL(provider, redirectTo string) (string, error)
}

// SubjectVerifier extracts the provider subject from an access token.
type SubjectVerifier interface {
	Verify(tokenString string) (string, error)
}

// LoginResult pairs the provider's tokens with the resolved local user.
type LoginResult struct {
	Tokens *identity.TokenResponse `json:"tokens"`
	User   *models.User            `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*identity.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	Profile(ctx context.Context) (*models.User, error)
	OAuthURL(provider, redirectTo string) (string, error)
}

type authService struct {
	provider IdentityProvider
	verifier SubjectVerifier
	users    repositories.UserRepository
}

func NewAuthService(provider IdentityProvider, verifier SubjectVerifier, users repositories.UserRepository) AuthService {
	return &authService{provider: provider, verifier: verifier, users: users}
}

// Login exchanges credentials at the provider, then resolves the token's
// subject to a local user. A valid provider account without an active
// local user cannot log in.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := common.RequireString(email, "email"); err != nil {
		return nil, err
	}
	if err := common.RequireString(password, "password"); err != nil {
		return nil, err
	}

	tokens, err := s.provider.PasswordGrant(ctx, email, password)
	if err != nil {
		return nil, err
	}

	subject, err := s.verifier.Verify(tokens.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByAuthID(ctx, subject)
	if err != nil {
		return nil, common.TranslateDBError(err, "user")
	}
	if !user.IsActive {
		return nil, &common.NotFoundError{Resource: "user"}
	}

	return &LoginResult{Tokens: tokens, User: user}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*identity.TokenResponse, error) {
	if err := common.RequireString(refreshToken, "refresh_token"); err != nil {
		return nil, err
	}
	return s.provider.RefreshGrant(ctx, refreshToken)
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	if err := common.RequireString(accessToken, "access_token"); err != nil {
		return err
	}
	return s.provider.Revoke(ctx, accessToken)
}

// Profile returns the full local user row behind the authenticated
// request context.
func (s *authService) Profile(ctx context.Context) (*models.User, error) {
	auth, ok := common.GetAuthUser(ctx)
	if !ok {
		return nil, &common.NotFoundError{Resource: "user"}
	}
	user, err := s.users.GetByID(ctx, auth.TenantID, auth.UserID)
	if err != nil {
		return nil, common.TranslateDBError(err, "user")
	}
	return user, nil
}

func (s *authService) OAuthURL(provider, redirectTo string) (string, error) {
	url, err := s.provider.AuthorizeURL(provider, redirectTo)
	if err != nil {
		return "", common.NewValidationError("%v", err)
	}
	return url, nil
}
