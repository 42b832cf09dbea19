package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier belongs to a tenant and to one of that tenant's customers;
// email is unique per (tenant, customer).
type Supplier struct {
	ID         uuid.UUID `json:"id" db:"id"`
	TenantID   uuid.UUID `json:"tenant_id" db:"tenant_id"`
	CustomerID uuid.UUID `json:"customer_id" db:"customer_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      *string   `json:"phone" db:"phone"`
	Address    *string   `json:"address" db:"address"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
