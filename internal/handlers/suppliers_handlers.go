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

type SupplierHandlers struct {
	suppliers services.SupplierService
}

func NewSupplierHandlers(suppliers services.SupplierService) *SupplierHandlers {
	return &SupplierHandlers{suppliers: suppliers}
}

func (h *SupplierHandlers) Register(g *echo.Group) {
	g.GET("/suppliers", h.List)
	g.GET("/suppliers/stats", h.Stats)
	g.GET("/suppliers/:id", h.Get)
	g.POST("/suppliers", h.Create)
	g.PUT("/suppliers/:id", h.Update)
	g.DELETE("/suppliers/:id", h.Delete)
}

type supplierResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Address    *string   `json:"address"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toSupplierResponse(s *models.Supplier) supplierResponse {
	return supplierResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Address:    s.Address,
		Status:     common.StatusString(s.IsActive),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func toSupplierResponses(suppliers []*models.Supplier) []supplierResponse {
	out := make([]supplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out
}

func (h *SupplierHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	customerID, err := optionalUUID(c, "customer_id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	limit, offset := pagination(c)
	suppliers, err := h.suppliers.List(c.Request().Context(), tid, customerID, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toSupplierResponses(suppliers))
}

func (h *SupplierHandlers) Stats(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	stats, err := h.suppliers.Stats(c.Request().Context(), tid)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, stats)
}

func (h *SupplierHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	supplier, err := h.suppliers.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toSupplierResponse(supplier))
}

type createSupplierRequest struct {
	CustomerID string  `json:"customer_id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Status     *string `json:"status"`
}

func (h *SupplierHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createSupplierRequest
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

	supplier := &models.Supplier{
		CustomerID: customerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		IsActive:   isActive,
	}
	if err := h.suppliers.Create(c.Request().Context(), tid, supplier); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toSupplierResponse(supplier))
}

type updateSupplierRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

func (h *SupplierHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	supplier, err := h.suppliers.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	if req.Address != nil {
		supplier.Address = req.Address
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		supplier.IsActive = isActive
	}

	if err := h.suppliers.Update(c.Request().Context(), tid, supplier); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toSupplierResponse(supplier))
}

func (h *SupplierHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.suppliers.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "supplier deleted")
}
