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

type LocationHandlers struct {
	locations services.LocationService
}

func NewLocationHandlers(locations services.LocationService) *LocationHandlers {
	return &LocationHandlers{locations: locations}
}

func (h *LocationHandlers) Register(g *echo.Group) {
	g.GET("/locations", h.List)
	g.GET("/locations/stats", h.Stats)
	g.GET("/locations/:id", h.Get)
	g.POST("/locations", h.Create)
	g.PUT("/locations/:id", h.Update)
	g.DELETE("/locations/:id", h.Delete)
}

type locationResponse struct {
	ID          uuid.UUID  `json:"id"`
	WarehouseID uuid.UUID  `json:"warehouse_id"`
	ZoneID      *uuid.UUID `json:"zone_id"`
	Code        string     `json:"code"`
	Type        string     `json:"type"`
	Barcode     *string    `json:"barcode"`
	QRCode      *string    `json:"qr_code"`
	Aisle       *string    `json:"aisle"`
	Rack        *string    `json:"rack"`
	Shelf       *string    `json:"shelf"`
	Capacity    *float64   `json:"capacity"`
	WeightLimit *float64   `json:"weight_limit"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toLocationResponse(l *models.Location) locationResponse {
	return locationResponse{
		ID:          l.ID,
		WarehouseID: l.WarehouseID,
		ZoneID:      l.ZoneID,
		Code:        l.LocationCode,
		Type:        l.LocationType,
		Barcode:     l.Barcode,
		QRCode:      l.QRCode,
		Aisle:       l.Aisle,
		Rack:        l.Rack,
		Shelf:       l.Shelf,
		Capacity:    l.Capacity,
		WeightLimit: l.WeightLimit,
		Status:      common.StatusString(l.IsActive),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toLocationResponses(locations []*models.Location) []locationResponse {
	out := make([]locationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, toLocationResponse(l))
	}
	return out
}

func (h *LocationHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	warehouseID, err := optionalUUID(c, "warehouse_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	zoneID, err := optionalUUID(c, "zone_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	limit, offset := pagination(c)
	locations, err := h.locations.List(c.Request().Context(), tid, warehouseID, zoneID, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toLocationResponses(locations))
}

func (h *LocationHandlers) Stats(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	stats, err := h.locations.Stats(c.Request().Context(), tid)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, stats)
}

func (h *LocationHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	location, err := h.locations.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toLocationResponse(location))
}

type createLocationRequest struct {
	WarehouseID string   `json:"warehouse_id" validate:"required"`
	ZoneID      *string  `json:"zone_id"`
	Code        string   `json:"code" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Barcode     *string  `json:"barcode"`
	QRCode      *string  `json:"qr_code"`
	Aisle       *string  `json:"aisle"`
	Rack        *string  `json:"rack"`
	Shelf       *string  `json:"shelf"`
	Capacity    *float64 `json:"capacity"`
	WeightLimit *float64 `json:"weight_limit"`
	Status      *string  `json:"status"`
}

func (h *LocationHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createLocationRequest
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
	var zoneID *uuid.UUID
	if req.ZoneID != nil && *req.ZoneID != "" {
		parsed, err := common.ParseUUID(*req.ZoneID, "zone_id")
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		zoneID = &parsed
	}
	isActive, err := parseStatus(req.Status)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	location := &models.Location{
		WarehouseID:  warehouseID,
		ZoneID:       zoneID,
		LocationCode: req.Code,
		LocationType: req.Type,
		Barcode:      req.Barcode,
		QRCode:       req.QRCode,
		Aisle:        req.Aisle,
		Rack:         req.Rack,
		Shelf:        req.Shelf,
		Capacity:     req.Capacity,
		WeightLimit:  req.WeightLimit,
		IsActive:     isActive,
	}
	if err := h.locations.Create(c.Request().Context(), tid, location); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toLocationResponse(location))
}

type updateLocationRequest struct {
	ZoneID      *string  `json:"zone_id"`
	Code        *string  `json:"code"`
	Type        *string  `json:"type"`
	Barcode     *string  `json:"barcode"`
	QRCode      *string  `json:"qr_code"`
	Aisle       *string  `json:"aisle"`
	Rack        *string  `json:"rack"`
	Shelf       *string  `json:"shelf"`
	Capacity    *float64 `json:"capacity"`
	WeightLimit *float64 `json:"weight_limit"`
	Status      *string  `json:"status"`
}

func (h *LocationHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	location, err := h.locations.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.ZoneID != nil {
		if *req.ZoneID == "" {
			location.ZoneID = nil
		} else {
			parsed, err := common.ParseUUID(*req.ZoneID, "zone_id")
			if err != nil {
				return common.RespondServiceError(c, err)
			}
			location.ZoneID = &parsed
		}
	}
	if req.Code != nil {
		location.LocationCode = *req.Code
	}
	if req.Type != nil {
		location.LocationType = *req.Type
	}
	if req.Barcode != nil {
		location.Barcode = req.Barcode
	}
	if req.QRCode != nil {
		location.QRCode = req.QRCode
	}
	if req.Aisle != nil {
		location.Aisle = req.Aisle
	}
	if req.Rack != nil {
		location.Rack = req.Rack
	}
	if req.Shelf != nil {
		location.Shelf = req.Shelf
	}
	if req.Capacity != nil {
		location.Capacity = req.Capacity
	}
	if req.WeightLimit != nil {
		location.WeightLimit = req.WeightLimit
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		location.IsActive = isActive
	}

	if err := h.locations.Update(c.Request().Context(), tid, location); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toLocationResponse(location))
}

func (h *LocationHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.locations.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "location deleted")
}
