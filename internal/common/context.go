package common

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const authUserKey contextKey = "auth_user"

// AuthUser is the resolved identity attached to every authenticated
// request: the local user row joined with the external provider subject.
type AuthUser struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	AuthID   string // identity-provider subject
	Email    string
	Role     string // admin, manager, operator, viewer
}

// WithAuthUser returns a context carrying the authenticated user.
func WithAuthUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, authUserKey, user)
}

// GetAuthUser extracts the authenticated user from the request context.
func GetAuthUser(ctx context.Context) (*AuthUser, bool) {
	user, ok := ctx.Value(authUserKey).(*AuthUser)
	return user, ok
}

// GetTenantID extracts the caller's tenant id from the request context.
func GetTenantID(ctx context.Context) (uuid.UUID, bool) {
	user, ok := GetAuthUser(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return user.TenantID, true
}
