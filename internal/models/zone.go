package models

import (
	"time"

	"github.com/google/uuid"
)

// Zone belongs to a warehouse; zone_code is unique per warehouse.
// Temperature/humidity bounds only apply when the matching control flag
// is set.
type Zone struct {
	ID                    uuid.UUID `json:"id" db:"id"`
	WarehouseID           uuid.UUID `json:"warehouse_id" db:"warehouse_id"`
	ZoneCode              string    `json:"zone_code" db:"zone_code"`
	Name                  string    `json:"name" db:"name"`
	Description           *string   `json:"description" db:"description"`
	TemperatureControlled bool      `json:"temperature_controlled" db:"temperature_controlled"`
	MinTemperature        *float64  `json:"min_temperature" db:"min_temperature"`
	MaxTemperature        *float64  `json:"max_temperature" db:"max_temperature"`
	HumidityControlled    bool      `json:"humidity_controlled" db:"humidity_controlled"`
	MinHumidity           *float64  `json:"min_humidity" db:"min_humidity"`
	MaxHumidity           *float64  `json:"max_humidity" db:"max_humidity"`
	IsActive              bool      `json:"is_active" db:"is_active"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}
