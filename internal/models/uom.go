package models

import (
	"time"

	"github.com/google/uuid"
)

// UOM is a unit of measure attached to an item; uom_code is unique per
// item. BaseUOMID optionally references another UOM of the same item and
// conversion_factor must be > 0.
type UOM struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	ItemID           uuid.UUID  `json:"item_id" db:"item_id"`
	UOMCode          string     `json:"uom_code" db:"uom_code"`
	Name             string     `json:"name" db:"name"`
	ConversionFactor float64    `json:"conversion_factor" db:"conversion_factor"`
	BaseUOMID        *uuid.UUID `json:"base_uom_id" db:"base_uom_id"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}
