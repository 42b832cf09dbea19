package models

import (
	"time"

	"github.com/google/uuid"
)

// Warehouse belongs to a tenant; warehouse_code is unique per tenant.
type Warehouse struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TenantID      uuid.UUID `json:"tenant_id" db:"tenant_id"`
	WarehouseCode string    `json:"warehouse_code" db:"warehouse_code"`
	Name          string    `json:"name" db:"name"`
	Address       *string   `json:"address" db:"address"`
	City          *string   `json:"city" db:"city"`
	Country       *string   `json:"country" db:"country"`
	TotalCapacity *float64  `json:"total_capacity" db:"total_capacity"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
