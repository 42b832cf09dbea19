package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Customer belongs to a tenant; customer_code is unique per tenant.
// Address blobs are stored as JSON documents.
type Customer struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	TenantID        uuid.UUID       `json:"tenant_id" db:"tenant_id"`
	CustomerCode    string          `json:"customer_code" db:"customer_code"`
	Name            string          `json:"name" db:"name"`
	Email           *string         `json:"email" db:"email"`
	Phone           *string         `json:"phone" db:"phone"`
	BillingAddress  json.RawMessage `json:"billing_address" db:"billing_address"`
	ShippingAddress json.RawMessage `json:"shipping_address" db:"shipping_address"`
	IsActive        bool            `json:"is_active" db:"is_active"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}
