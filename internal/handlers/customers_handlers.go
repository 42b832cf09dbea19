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

type CustomerHandlers struct {
	customers services.CustomerService
}

func NewCustomerHandlers(customers services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customers: customers}
}

func (h *CustomerHandlers) Register(g *echo.Group) {
	g.GET("/customers", h.List)
	g.GET("/customers/stats", h.Stats)
	g.GET("/customers/:id", h.Get)
	g.POST("/customers", h.Create)
	g.PUT("/customers/:id", h.Update)
	g.DELETE("/customers/:id", h.Delete)
}

type customerResponse struct {
	ID              uuid.UUID       `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	BillingAddress  json.RawMessage `json:"billing_address"`
	ShippingAddress json.RawMessage `json:"shipping_address"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func toCustomerResponse(cu *models.Customer) customerResponse {
	return customerResponse{
		ID:              cu.ID,
		Code:            cu.CustomerCode,
		Name:            cu.Name,
		Email:           cu.Email,
		Phone:           cu.Phone,
		BillingAddress:  cu.BillingAddress,
		ShippingAddress: cu.ShippingAddress,
		Status:          common.StatusString(cu.IsActive),
		CreatedAt:       cu.CreatedAt,
		UpdatedAt:       cu.UpdatedAt,
	}
}

func toCustomerResponses(customers []*models.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(customers))
	for _, cu := range customers {
		out = append(out, toCustomerResponse(cu))
	}
	return out
}

func (h *CustomerHandlers) List(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	limit, offset := pagination(c)
	customers, err := h.customers.List(c.Request().Context(), tid, limit, offset)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toCustomerResponses(customers))
}

func (h *CustomerHandlers) Stats(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	stats, err := h.customers.Stats(c.Request().Context(), tid)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, stats)
}

func (h *CustomerHandlers) Get(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	customer, err := h.customers.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toCustomerResponse(customer))
}

type createCustomerRequest struct {
	Code            string          `json:"code" validate:"required"`
	Name            string          `json:"name" validate:"required"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	BillingAddress  json.RawMessage `json:"billing_address"`
	ShippingAddress json.RawMessage `json:"shipping_address"`
	Status          *string         `json:"status"`
}

func (h *CustomerHandlers) Create(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	var req createCustomerRequest
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

	customer := &models.Customer{
		CustomerCode:    req.Code,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		BillingAddress:  req.BillingAddress,
		ShippingAddress: req.ShippingAddress,
		IsActive:        isActive,
	}
	if err := h.customers.Create(c.Request().Context(), tid, customer); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusCreated, toCustomerResponse(customer))
}

type updateCustomerRequest struct {
	Code            *string         `json:"code"`
	Name            *string         `json:"name"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	BillingAddress  json.RawMessage `json:"billing_address"`
	ShippingAddress json.RawMessage `json:"shipping_address"`
	Status          *string         `json:"status"`
}

func (h *CustomerHandlers) Update(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	customer, err := h.customers.GetByID(c.Request().Context(), tid, id)
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return common.RespondError(c, http.StatusBadRequest, "Invalid request body")
	}

	if req.Code != nil {
		customer.CustomerCode = *req.Code
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.BillingAddress != nil {
		customer.BillingAddress = req.BillingAddress
	}
	if req.ShippingAddress != nil {
		customer.ShippingAddress = req.ShippingAddress
	}
	if req.Status != nil {
		isActive, err := parseStatus(req.Status)
		if err != nil {
			return common.RespondServiceError(c, err)
		}
		customer.IsActive = isActive
	}

	if err := h.customers.Update(c.Request().Context(), tid, customer); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondData(c, http.StatusOK, toCustomerResponse(customer))
}

func (h *CustomerHandlers) Delete(c echo.Context) error {
	tid, ok := tenantID(c)
	if !ok {
		return common.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	}

	id, err := common.ParseUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondServiceError(c, err)
	}

	if err := h.customers.Delete(c.Request().Context(), tid, id); err != nil {
		return common.RespondServiceError(c, err)
	}
	return common.RespondMessage(c, http.StatusOK, "customer deleted")
}
