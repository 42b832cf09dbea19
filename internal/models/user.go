package models

import (
	"time"

	"github.com/google/uuid"
)

// Internal role values.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// Roles lists the allowed internal role values.
var Roles = []string{RoleAdmin, RoleManager, RoleOperator, RoleViewer}

var displayRoles = map[string]string{
	RoleAdmin:    "Administrator",
	RoleManager:  "Manager",
	RoleOperator: "Operator",
	RoleViewer:   "Viewer",
}

// DisplayRole maps an internal role onto its frontend-facing name.
func DisplayRole(role string) string {
	if display, ok := displayRoles[role]; ok {
		return display
	}
	return role
}

// InternalRole maps a display role back to its internal value. Unknown
// values are returned unchanged so validation can reject them.
func InternalRole(display string) string {
	for internal, d := range displayRoles {
		if d == display || internal == display {
			return internal
		}
	}
	return display
}

// User belongs to a tenant and is linked to an external identity-provider
// subject through AuthID. Email is unique per tenant.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	AuthID    string    `json:"auth_id" db:"auth_id"`
	Email     string    `json:"email" db:"email"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Role      string    `json:"role" db:"role"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
