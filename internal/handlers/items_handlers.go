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

type ItemHandlers struct {
	items services.ItemService
}

func NewItemHandlers(items services.ItemService) *ItemHandlers {
	return &ItemHandlers{items: items}
}

func (h *ItemHandlers) Register(g *echo.Group) {
	g.GET("/items", h.List)
	g.GET("/items/stats", h.Stats)
	g.GET("/items/:id", h.Get)
	g.POST("/items", h.Create)
	g.PUT("/items/:id", h.Update)
	g.DELETE("/items/:id", h.Delete)
}

type itemResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	UnitCost        *float64  `json:"unit_cost"`
	UnitPrice       *float64  `json:"unit_price"`
	WeightKG        *float64  `json:"weight_kg"`
	LengthCM        *float64  `json:"length_cm"`
	WidthCM         *float64  `json:"width_cm"`
	HeightCM        *float64  `json:"height_cm"`
	LotTracked      bool      `json:"lot_tracked"`
	SerialTracked   bool      `json:"serial_tracked"`
	ReorderPoint    *float64  `json:"reorder_point"`
	ReorderQuantity *float64  `json:"reorder_quantity"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{
		ID:              i.ID,
		CustomerID:      i.CustomerID,
		Code:            i.ItemCode,
		Name:            i.Name,
		Description:     i.Description,
		UnitCost:        i.UnitCost,
		UnitPrice:       i.UnitPrice,
		WeightKG:        i.WeightKG,
		LengthCM:        i.LengthCM,
		WidthCM:         i.WidthCM,
		HeightCM:        i.HeightCM,
		LotTracked:      i.LotTracked,
		SerialTracked:   i.SerialTracked,
		ReorderPoint:    i.ReorderPoint,
		ReorderQuantity: i.ReorderQuantity,
		Status:          common.StatusString(i.IsActive),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func toItemResponses(items []*models.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}

func (h *ItemHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	customerID, err := optionalUUID(c, "customer_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	limit, offset := pagination(c)
	items, err := h.items.List(c.Request().Context(), tid, customerID, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toItemResponses(items))
}

func (h *ItemHandlers) Stats(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	stats, err := h.items.Stats(c.Request().Context(), tid)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, stats)
}

func (h *ItemHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	item, err := h.items.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toItemResponse(item))
}

type createItemRequest struct {
	CustomerID      string   `json:"customer_id" validate:"required"`
	Code            string   `json:"code" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Description     *string  `json:"description"`
	UnitCost        *float64 `json:"unit_cost"`
	UnitPrice       *float64 `json:"unit_price"`
	WeightKG        *float64 `json:"weight_kg"`
	LengthCM        *float64 `json:"length_cm"`
	WidthCM         *float64 `json:"width_cm"`
	HeightCM        *float64 `json:"height_cm"`
	LotTracked      bool     `json:"lot_tracked"`
	SerialTracked   bool     `json:"serial_tracked"`
	ReorderPoint    *float64 `json:"reorder_point"`
	ReorderQuantity *float64 `json:"reorder_quantity"`
	Status          *string  `json:"status"`
}

func (h *ItemHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.RespondServiceError(c, err)
	}

	customerID, err := common.ParseUUID(req.CustomerID, "customer_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	isActive, err := parseStatus(req.Status)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	item := &models.Item{
		CustomerID:      customerID,
		ItemCode:        req.Code,
		Name:            req.Name,
		Description:     req.Description,
		UnitCost:        req.UnitCost,
		UnitPrice:       req.UnitPrice,
		WeightKG:        req.WeightKG,
		LengthCM:        req.LengthCM,
		WidthCM:         req.WidthCM,
		HeightCM:        req.HeightCM,
		LotTracked:      req.LotTracked,
		SerialTracked:   req.SerialTracked,
		ReorderPoint:    req.ReorderPoint,
		ReorderQuantity: req.ReorderQuantity,
		IsActive:        isActive,
	}
	if err := h.items.Create(c.Request().Context(), tid, item); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toItemResponse(item))
}

type updateItemRequest struct {
	Code            *string  `json:"code"`
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	UnitCost        *float64 `json:"unit_cost"`
	UnitPrice       *float64 `json:"unit_price"`
	WeightKG        *float64 `json:"weight_kg"`
	LengthCM        *float64 `json:"length_cm"`
	WidthCM         *float64 `json:"width_cm"`
	HeightCM        *float64 `json:"height_cm"`
	LotTracked      *bool    `json:"lot_tracked"`
	SerialTracked   *bool    `json:"serial_tracked"`
	ReorderPoint    *float64 `json:"reorder_point"`
	ReorderQuantity *float64 `json:"reorder_quantity"`
	Status          *string  `json:"status"`
}

func (h *ItemHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	item, err := h.items.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Code != nil {
		item.ItemCode = *req.Code
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.UnitCost != nil {
		item.UnitCost = req.UnitCost
	}
	if req.UnitPrice != nil {
		item.UnitPrice = req.UnitPrice
	}
	if req.WeightKG != nil {
		item.WeightKG = req.WeightKG
	}
	if req.LengthCM != nil {
		item.LengthCM = req.LengthCM
	}
	if req.WidthCM != nil {
		item.WidthCM = req.WidthCM
	}
	if req.HeightCM != nil {
		item.HeightCM = req.HeightCM
	}
	if req.LotTracked != nil {
		item.LotTracked = *req.LotTracked
	}
	if req.SerialTracked != nil {
		item.SerialTracked = *req.SerialTracked
	}
	if req.ReorderPoint != nil {
		item.ReorderPoint = req.ReorderPoint
	}
	if req.ReorderQuantity != nil {
		item.ReorderQuantity = req.ReorderQuantity
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		item.IsActive = isActive
	}

	if err := h.items.Update(c.Request().Context(), tid, item); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toItemResponse(item))
}

func (h *ItemHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.items.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "item deleted")
}
