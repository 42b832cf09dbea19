package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"stockyard/internal/common"
	"stockyard/internal/models"
	"stockyard/internal/services"
)

type DoorHandlers struct {
	doors services.DoorService
}

func NewDoorHandlers(doors services.DoorService) *DoorHandlers {
	return &DoorHandlers{doors: doors}
}

func (h *DoorHandlers) Register(g *echo.Group) {
	g.GET("/doors", h.List)
	g.GET("/doors/stats", h.Stats)
	g.GET("/doors/:id", h.Get)
	g.POST("/doors", h.Create)
	g.PUT("/doors/:id", h.Update)
	g.DELETE("/doors/:id", h.Delete)
}

type doorResponse struct {
	ID          uuid.UUID       `json:"id"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	Number      string          `json:"number"`
	Type        string          `json:"type"`
	WidthCM     *float64        `json:"width_cm"`
	HeightCM    *float64        `json:"height_cm"`
	Equipment   json.RawMessage `json:"equipment"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toDoorResponse(d *models.Door) doorResponse {
	return doorResponse{
		ID:          d.ID,
		WarehouseID: d.WarehouseID,
		Number:      d.DoorNumber,
		Type:        d.DoorType,
		WidthCM:     d.WidthCM,
		HeightCM:    d.HeightCM,
		Equipment:   d.Equipment,
		Status:      common.StatusString(d.IsActive),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toDoorResponses(doors []*models.Door) []doorResponse {
	out := make([]doorResponse, 0, len(doors))
	for _, d := range doors {
		out = append(out, toDoorResponse(d))
	}
	return out
}

func (h *DoorHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	warehouseID, err := optionalUUID(c, "warehouse_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	limit, offset := pagination(c)
	doors, err := h.doors.List(c.Request().Context(), tid, warehouseID, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toDoorResponses(doors))
}

func (h *DoorHandlers) Stats(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	stats, err := h.doors.Stats(c.Request().Context(), tid)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, stats)
}

func (h *DoorHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	door, err := h.doors.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toDoorResponse(door))
}

type createDoorRequest struct {
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Number      string          `json:"number" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	WidthCM     *float64        `json:"width_cm"`
	HeightCM    *float64        `json:"height_cm"`
	Equipment   json.RawMessage `json:"equipment"`
	Status      *string         `json:"status"`
}

func (h *DoorHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createDoorRequest
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

	door := &models.Door{
		WarehouseID: warehouseID,
		DoorNumber:  req.Number,
		DoorType:    req.Type,
		WidthCM:     req.WidthCM,
		HeightCM:    req.HeightCM,
		Equipment:   req.Equipment,
		IsActive:    isActive,
	}
	if err := h.doors.Create(c.Request().Context(), tid, door); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toDoorResponse(door))
}

type updateDoorRequest struct {
	Number    *string         `json:"number"`
	Type      *string         `json:"type"`
	WidthCM   *float64        `json:"width_cm"`
	HeightCM  *float64        `json:"height_cm"`
	Equipment json.RawMessage `json:"equipment"`
	Status    *string         `json:"status"`
}

func (h *DoorHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	door, err := h.doors.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateDoorRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Number != nil {
		door.DoorNumber = *req.Number
	}
	if req.Type != nil {
		door.DoorType = *req.Type
	}
	if req.WidthCM != nil {
		door.WidthCM = req.WidthCM
	}
	if req.HeightCM != nil {
		door.HeightCM = req.HeightCM
	}
	if req.Equipment != nil {
		door.Equipment = req.Equipment
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		door.IsActive = isActive
	}

	if err := h.doors.Update(c.Request().Context(), tid, door); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toDoorResponse(door))
}

func (h *DoorHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.doors.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "door deleted")
}
