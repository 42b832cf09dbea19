package models

import (
	"time"

	"github.com/google/uuid"
)

// Location types.
const (
	LocationTypeFloor       = "floor"
	LocationTypeRack        = "rack"
	LocationTypeShelf       = "shelf"
	LocationTypeBin         = "bin"
	LocationTypeDock        = "dock"
	LocationTypeStagingArea = "staging_area"
	LocationTypeBulkArea    = "bulk_area"
)

// LocationTypes lists the allowed location_type values.
var LocationTypes = []string{
	LocationTypeFloor, LocationTypeRack, LocationTypeShelf, LocationTypeBin,
	LocationTypeDock, LocationTypeStagingArea, LocationTypeBulkArea,
}

// Location belongs to a warehouse and optionally to a zone of that same
// warehouse. location_code is unique per warehouse; barcode and qr_code
// are unique across all locations.
type Location struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	WarehouseID  uuid.UUID  `json:"warehouse_id" db:"warehouse_id"`
	ZoneID       *uuid.UUID `json:"zone_id" db:"zone_id"`
	LocationCode string     `json:"location_code" db:"location_code"`
	LocationType string     `json:"location_type" db:"location_type"`
	Barcode      *string    `json:"barcode" db:"barcode"`
	QRCode       *string    `json:"qr_code" db:"qr_code"`
	Aisle        *string    `json:"aisle" db:"aisle"`
	Rack         *string    `json:"rack" db:"rack"`
	Shelf        *string    `json:"shelf" db:"shelf"`
	Capacity     *float64   `json:"capacity" db:"capacity"`
	WeightLimit  *float64   `json:"weight_limit" db:"weight_limit"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
