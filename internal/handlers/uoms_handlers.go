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

type UOMHandlers struct {
	uoms services.UOMService
}

func NewUOMHandlers(uoms services.UOMService) *UOMHandlers {
	return &UOMHandlers{uoms: uoms}
}

func (h *UOMHandlers) Register(g *echo.Group) {
	g.GET("/uoms", h.List)
	g.GET("/uoms/:id", h.Get)
	g.POST("/uoms", h.Create)
	g.PUT("/uoms/:id", h.Update)
	g.DELETE("/uoms/:id", h.Delete)
}

type uomResponse struct {
	ID               uuid.UUID  `json:"id"`
	ItemID           uuid.UUID  `json:"item_id"`
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	ConversionFactor float64    `json:"conversion_factor"`
	BaseUOMID        *uuid.UUID `json:"base_uom_id"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toUOMResponse(u *models.UOM) uomResponse {
	return uomResponse{
		ID:               u.ID,
		ItemID:           u.ItemID,
		Code:             u.UOMCode,
		Name:             u.Name,
		ConversionFactor: u.ConversionFactor,
		BaseUOMID:        u.BaseUOMID,
		Status:           common.StatusString(u.IsActive),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func toUOMResponses(uoms []*models.UOM) []uomResponse {
	out := make([]uomResponse, 0, len(uoms))
	for _, u := range uoms {
		out = append(out, toUOMResponse(u))
	}
	return out
}

func (h *UOMHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	itemID, err := optionalUUID(c, "item_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	limit, offset := pagination(c)
	uoms, err := h.uoms.List(c.Request().Context(), tid, itemID, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toUOMResponses(uoms))
}

func (h *UOMHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	uom, err := h.uoms.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toUOMResponse(uom))
}

type createUOMRequest struct {
	ItemID           string  `json:"item_id" validate:"required"`
	Code             string  `json:"code" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	ConversionFactor float64 `json:"conversion_factor" validate:"required"`
	BaseUOMID        *string `json:"base_uom_id"`
	Status           *string `json:"status"`
}

func (h *UOMHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createUOMRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return common.RespondServiceError(c, err)
	}

	itemID, err := common.ParseUUID(req.ItemID, "item_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	var baseUOMID *uuid.UUID
	if req.BaseUOMID != nil && *req.BaseUOMID != "" {
		parsed, err := common.ParseUUID(*req.BaseUOMID, "base_uom_id")
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		baseUOMID = &parsed
	}
	isActive, err := parseStatus(req.Status)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	uom := &models.UOM{
		ItemID:           itemID,
		UOMCode:          req.Code,
		Name:             req.Name,
		ConversionFactor: req.ConversionFactor,
		BaseUOMID:        baseUOMID,
		IsActive:         isActive,
	}
	if err := h.uoms.Create(c.Request().Context(), tid, uom); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toUOMResponse(uom))
}

type updateUOMRequest struct {
	Code             *string  `json:"code"`
	Name             *string  `json:"name"`
	ConversionFactor *float64 `json:"conversion_factor"`
	BaseUOMID        *string  `json:"base_uom_id"`
	Status           *string  `json:"status"`
}

func (h *UOMHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	uom, err := h.uoms.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateUOMRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Code != nil {
		uom.UOMCode = *req.Code
	}
	if req.Name != nil {
		uom.Name = *req.Name
	}
	if req.ConversionFactor != nil {
		uom.ConversionFactor = *req.ConversionFactor
	}
	if req.BaseUOMID != nil {
		if *req.BaseUOMID == "" {
			uom.BaseUOMID = nil
		} else {
			parsed, err := common.ParseUUID(*req.BaseUOMID, "base_uom_id")
			if err != nil {
				return common.RespondServiceError(c, err)
			}
			uom.BaseUOMID = &parsed
		}
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		uom.IsActive = isActive
	}

	if err := h.uoms.Update(c.Request().Context(), tid, uom); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toUOMResponse(uom))
}

func (h *UOMHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.uoms.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "uom deleted")
}
