package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stockyard/internal/common"
	"stockyard/internal/models"
	"stockyard/internal/services"
)

type ZoneHandlers struct {
	zones services.ZoneService
}

func NewZoneHandlers(zones services.ZoneService) *ZoneHandlers {
	return &ZoneHandlers{zones: zones}
}

func (h *ZoneHandlers) Register(g *echo.Group) {
	g.GET("/zones", h.List)
	g.GET("/zones/stats", h.Stats)
	g.GET("/zones/:id", h.Get)
	g.POST("/zones", h.Create)
	g.PUT("/zones/:id", h.Update)
	g.DELETE("/zones/:id", h.Delete)
}

type zoneResponse struct {
	ID                    uuid.UUID `json:"id"`
	WarehouseID           uuid.UUID `json:"warehouse_id"`
	Code                  string    `json:"code"`
	Name                  string    `json:"name"`
	Description           *string   `json:"description"`
	TemperatureControlled bool      `json:"temperature_controlled"`
	MinTemperature        *float64  `json:"min_temperature"`
	MaxTemperature        *float64  `json:"max_temperature"`
	HumidityControlled    bool      `json:"humidity_controlled"`
	MinHumidity           *float64  `json:"min_humidity"`
	MaxHumidity           *float64  `json:"max_humidity"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func toZoneResponse(z *models.Zone) zoneResponse {
	return zoneResponse{
		ID:                    z.ID,
		WarehouseID:           z.WarehouseID,
		Code:                  z.ZoneCode,
		Name:                  z.Name,
		Description:           z.Description,
		TemperatureControlled: z.TemperatureControlled,
		MinTemperature:        z.MinTemperature,
		MaxTemperature:        z.MaxTemperature,
		HumidityControlled:    z.HumidityControlled,
		MinHumidity:           z.MinHumidity,
		MaxHumidity:           z.MaxHumidity,
		Status:                common.StatusString(z.IsActive),
		CreatedAt:             z.CreatedAt,
		UpdatedAt:             z.UpdatedAt,
	}
}

func toZoneResponses(zones []*models.Zone) []zoneResponse {
	out := make([]zoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, toZoneResponse(z))
	}
	return out
}

func (h *ZoneHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	warehouseID, err := optionalUUID(c, "warehouse_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	limit, offset := pagination(c)
	zones, err := h.zones.List(c.Request().Context(), tid, warehouseID, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toZoneResponses(zones))
}

func (h *ZoneHandlers) Stats(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	stats, err := h.zones.Stats(c.Request().Context(), tid)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, stats)
}

func (h *ZoneHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	zone, err := h.zones.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toZoneResponse(zone))
}

type createZoneRequest struct {
	WarehouseID           string   `json:"warehouse_id" validate:"required"`
	Code                  string   `json:"code" validate:"required"`
	Name                  string   `json:"name" validate:"required"`
	Description           *string  `json:"description"`
	TemperatureControlled bool     `json:"temperature_controlled"`
	MinTemperature        *float64 `json:"min_temperature"`
	MaxTemperature        *float64 `json:"max_temperature"`
	HumidityControlled    bool     `json:"humidity_controlled"`
	MinHumidity           *float64 `json:"min_humidity"`
	MaxHumidity           *float64 `json:"max_humidity"`
	Status                *string  `json:"status"`
}

func (h *ZoneHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createZoneRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.RespondServiceError(c, err)
	}

	warehouseID, err := common.ParseUUID(req.WarehouseID, "warehouse_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	isActive, err := parseStatus(req.Status)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	zone := &models.Zone{
		WarehouseID:           warehouseID,
		ZoneCode:              req.Code,
		Name:                  req.Name,
		Description:           req.Description,
		TemperatureControlled: req.TemperatureControlled,
		MinTemperature:        req.MinTemperature,
		MaxTemperature:        req.MaxTemperature,
		HumidityControlled:    req.HumidityControlled,
		MinHumidity:           req.MinHumidity,
		MaxHumidity:           req.MaxHumidity,
		IsActive:              isActive,
	}
	if err := h.zones.Create(c.Request().Context(), tid, zone); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toZoneResponse(zone))
}

type updateZoneRequest struct {
	Code                  *string  `json:"code"`
	Name                  *string  `json:"name"`
	Description           *string  `json:"description"`
	TemperatureControlled *bool    `json:"temperature_controlled"`
	MinTemperature        *float64 `json:"min_temperature"`
	MaxTemperature        *float64 `json:"max_temperature"`
	HumidityControlled    *bool    `json:"humidity_controlled"`
	MinHumidity           *float64 `json:"min_humidity"`
	MaxHumidity           *float64 `json:"max_humidity"`
	Status                *string  `json:"status"`
}

func (h *ZoneHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	zone, err := h.zones.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateZoneRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Code != nil {
		zone.ZoneCode = *req.Code
	}
	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = req.Description
	}
	if req.TemperatureControlled != nil {
		zone.TemperatureControlled = *req.TemperatureControlled
	}
	if req.MinTemperature != nil {
		zone.MinTemperature = req.MinTemperature
	}
	if req.MaxTemperature != nil {
		zone.MaxTemperature = req.MaxTemperature
	}
	if req.HumidityControlled != nil {
		zone.HumidityControlled = *req.HumidityControlled
	}
	if req.MinHumidity != nil {
		zone.MinHumidity = req.MinHumidity
	}
	if req.MaxHumidity != nil {
		zone.MaxHumidity = req.MaxHumidity
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		zone.IsActive = isActive
	}

	if err := h.zones.Update(c.Request().Context(), tid, zone); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toZoneResponse(zone))
}

func (h *ZoneHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.zones.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "zone deleted")
}
