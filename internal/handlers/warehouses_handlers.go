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

type WarehouseHandlers struct {
	warehouses services.WarehouseService
}

func NewWarehouseHandlers(warehouses services.WarehouseService) *WarehouseHandlers {
	return &WarehouseHandlers{warehouses: warehouses}
}

func (h *WarehouseHandlers) Register(g *echo.Group) {
	g.GET("/warehouses", h.List)
	g.GET("/warehouses/stats", h.Stats)
	g.GET("/warehouses/:id", h.Get)
	g.POST("/warehouses", h.Create)
	g.PUT("/warehouses/:id", h.Update)
	g.DELETE("/warehouses/:id", h.Delete)
}

// warehouseResponse reshapes internal column naming onto the
// frontend-facing convention (code, derived status).
type warehouseResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	Country       *string   `json:"country"`
	TotalCapacity *float64  `json:"total_capacity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toWarehouseResponse(w *models.Warehouse) warehouseResponse {
	return warehouseResponse{
		ID:            w.ID,
		Code:          w.WarehouseCode,
		Name:          w.Name,
		Address:       w.Address,
		City:          w.City,
		Country:       w.Country,
		TotalCapacity: w.TotalCapacity,
		Status:        common.StatusString(w.IsActive),
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func toWarehouseResponses(warehouses []*models.Warehouse) []warehouseResponse {
	out := make([]warehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, toWarehouseResponse(w))
	}
	return out
}

func (h *WarehouseHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	limit, offset := pagination(c)
	warehouses, err := h.warehouses.List(c.Request().Context(), tid, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toWarehouseResponses(warehouses))
}

func (h *WarehouseHandlers) Stats(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	stats, err := h.warehouses.Stats(c.Request().Context(), tid)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, stats)
}

func (h *WarehouseHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	warehouse, err := h.warehouses.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toWarehouseResponse(warehouse))
}

type createWarehouseRequest struct {
	Code          string   `json:"code" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	Country       *string  `json:"country"`
	TotalCapacity *float64 `json:"total_capacity"`
	Status        *string  `json:"status"`
}

func (h *WarehouseHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.RespondServiceError(c, err)
	}

	isActive, err := parseStatus(req.Status)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	warehouse := &models.Warehouse{
		WarehouseCode: req.Code,
		Name:          req.Name,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		TotalCapacity: req.TotalCapacity,
		IsActive:      isActive,
	}
	if err := h.warehouses.Create(c.Request().Context(), tid, warehouse); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toWarehouseResponse(warehouse))
}

type updateWarehouseRequest struct {
	Code          *string  `json:"code"`
	Name          *string  `json:"name"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	Country       *string  `json:"country"`
	TotalCapacity *float64 `json:"total_capacity"`
	Status        *string  `json:"status"`
}

// Update is partial: the current row is fetched scoped, request fields
// overlay it, and the merged row goes back through the full rule set.
func (h *WarehouseHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	warehouse, err := h.warehouses.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Code != nil {
		warehouse.WarehouseCode = *req.Code
	}
	if req.Name != nil {
		warehouse.Name = *req.Name
	}
	if req.Address != nil {
		warehouse.Address = req.Address
	}
	if req.City != nil {
		warehouse.City = req.City
	}
	if req.Country != nil {
		warehouse.Country = req.Country
	}
	if req.TotalCapacity != nil {
		warehouse.TotalCapacity = req.TotalCapacity
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		warehouse.IsActive = isActive
	}

	if err := h.warehouses.Update(c.Request().Context(), tid, warehouse); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toWarehouseResponse(warehouse))
}

func (h *WarehouseHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.warehouses.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "warehouse deleted")
}
