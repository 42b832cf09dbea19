package models

import (
	"time"

	"github.com/google/uuid"
)

// Item belongs to a customer; item_code is unique per customer. Numeric
// fields are non-negative where set.
type Item struct {
	ID              uuid.UUID `json:"id" db:"id"`
	CustomerID      uuid.UUID `json:"customer_id" db:"customer_id"`
	ItemCode        string    `json:"item_code" db:"item_code"`
	Name            string    `json:"name" db:"name"`
	Description     *string   `json:"description" db:"description"`
	UnitCost        *float64  `json:"unit_cost" db:"unit_cost"`
	UnitPrice       *float64  `json:"unit_price" db:"unit_price"`
	WeightKG        *float64  `json:"weight_kg" db:"weight_kg"`
	LengthCM        *float64  `json:"length_cm" db:"length_cm"`
	WidthCM         *float64  `json:"width_cm" db:"width_cm"`
	HeightCM        *float64  `json:"height_cm" db:"height_cm"`
	LotTracked      bool      `json:"lot_tracked" db:"lot_tracked"`
	SerialTracked   bool      `json:"serial_tracked" db:"serial_tracked"`
	ReorderPoint    *float64  `json:"reorder_point" db:"reorder_point"`
	ReorderQuantity *float64  `json:"reorder_quantity" db:"reorder_quantity"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
