package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Door types.
const (
	DoorTypeInbound  = "inbound"
	DoorTypeOutbound = "outbound"
	DoorTypeStaging  = "staging"
)

// DoorTypes lists the allowed door_type values.
var DoorTypes = []string{DoorTypeInbound, DoorTypeOutbound, DoorTypeStaging}

// Door belongs to a warehouse; door_number is unique per warehouse.
// Equipment is a JSON list of attached equipment names.
type Door struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	WarehouseID uuid.UUID       `json:"warehouse_id" db:"warehouse_id"`
	DoorNumber  string          `json:"door_number" db:"door_number"`
	DoorType    string          `json:"door_type" db:"door_type"`
	WidthCM     *float64        `json:"width_cm" db:"width_cm"`
	HeightCM    *float64        `json:"height_cm" db:"height_cm"`
	Equipment   json.RawMessage `json:"equipment" db:"equipment"`
	IsActive    bool            `json:"is_active" db:"is_active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}
