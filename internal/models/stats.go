package models

// Aggregate counts for the per-resource /stats endpoints. All numbers are
// computed in SQL (GROUP BY / FILTER), never by tallying fetched rows.

type WarehouseStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type ZoneStats struct {
	Total                 int `json:"total"`
	Active                int `json:"active"`
	TemperatureControlled int `json:"temperature_controlled"`
	HumidityControlled    int `json:"humidity_controlled"`
}

type LocationStats struct {
	Total  int            `json:"total"`
	Active int            `json:"active"`
	ByType map[string]int `json:"by_type"`
}

type CustomerStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type SupplierStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type ItemStats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	LotTracked    int `json:"lot_tracked"`
	SerialTracked int `json:"serial_tracked"`
}

type DoorStats struct {
	Total  int            `json:"total"`
	Active int            `json:"active"`
	ByType map[string]int `json:"by_type"`
}

type UserStats struct {
	Total  int            `json:"total"`
	Active int            `json:"active"`
	ByRole map[string]int `json:"by_role"`
}
