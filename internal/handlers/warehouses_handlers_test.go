package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"stockyard/internal/common"
	"stockyard/internal/models"
	"stockyard/internal/services"
)

type mockWarehouseService struct {
	mock.Mock
}

var _ services.WarehouseService = (*mockWarehouseService)(nil)

func (m *mockWarehouseService) Create(ctx context.Context, tenantID uuid.UUID, warehouse *models.Warehouse) error {
	return m.Called(ctx, tenantID, warehouse).Error(0)
}

func (m *mockWarehouseService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Warehouse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *mockWarehouseService) Update(ctx context.Context, tenantID uuid.UUID, warehouse *models.Warehouse) error {
	return m.Called(ctx, tenantID, warehouse).Error(0)
}

func (m *mockWarehouseService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *mockWarehouseService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Warehouse, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

func (m *mockWarehouseService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.WarehouseStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WarehouseStats), args.Error(1)
}

type WarehouseHandlersTestSuite struct {
	suite.Suite
	service  *mockWarehouseService
	handlers *WarehouseHandlers
	echo     *echo.Echo
	tenantID uuid.UUID
}

func (suite *WarehouseHandlersTestSuite) SetupTest() {
	suite.service = new(mockWarehouseService)
	suite.service.Test(suite.T())
	suite.handlers = NewWarehouseHandlers(suite.service)
	suite.echo = echo.New()
	suite.echo.Validator = common.NewRequestValidator()
	suite.tenantID = uuid.New()
}

func (suite *WarehouseHandlersTestSuite) TearDownTest() {
	suite.service.AssertExpectations(suite.T())
}

// newContext builds an authenticated echo context the way the auth
// middleware would.
func (suite *WarehouseHandlersTestSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req = req.WithContext(common.WithAuthUser(req.Context(), &common.AuthUser{
		UserID:   uuid.New(),
		TenantID: suite.tenantID,
		Role:     models.RoleAdmin,
	}))
	rec := httptest.NewRecorder()
	return suite.echo.NewContext(req, rec), rec
}

func (suite *WarehouseHandlersTestSuite) decode(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *WarehouseHandlersTestSuite) TestGetWithoutAuthContext() {
	req := httptest.NewRequest(http.MethodGet, "/api/warehouses", nil)
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	suite.NoError(suite.handlers.List(c))
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *WarehouseHandlersTestSuite) TestGetMalformedID() {
	c, rec := suite.newContext(http.MethodGet, "/api/warehouses/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	suite.NoError(suite.handlers.Get(c))

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal(false, suite.decode(rec)["success"])
}

func (suite *WarehouseHandlersTestSuite) TestGetNotFound() {
	id := uuid.New()
	suite.service.On("GetByID", mock.Anything, suite.tenantID, id).
		Return(nil, &common.NotFoundError{Resource: "warehouse"})

	c, rec := suite.newContext(http.MethodGet, "/api/warehouses/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.NoError(suite.handlers.Get(c))

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal("warehouse not found", suite.decode(rec)["error"])
}

func (suite *WarehouseHandlersTestSuite) TestCreateReshapesResponse() {
	suite.service.On("Create", mock.Anything, suite.tenantID, mock.AnythingOfType("*models.Warehouse")).
		Return(nil)

	c, rec := suite.newContext(http.MethodPost, "/api/warehouses", `{"code":"WH-001","name":"Main"}`)

	suite.NoError(suite.handlers.Create(c))

	suite.Equal(http.StatusCreated, rec.Code)
	body := suite.decode(rec)
	data := body["data"].(map[string]any)
	suite.Equal("WH-001", data["code"])
	suite.Equal("active", data["status"])
	// Internal column names never leak.
	suite.NotContains(data, "warehouse_code")
	suite.NotContains(data, "is_active")
}

func (suite *WarehouseHandlersTestSuite) TestCreateMissingRequiredField() {
	c, rec := suite.newContext(http.MethodPost, "/api/warehouses", `{"name":"Main"}`)

	suite.NoError(suite.handlers.Create(c))

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.service.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WarehouseHandlersTestSuite) TestCreateDuplicate() {
	suite.service.On("Create", mock.Anything, suite.tenantID, mock.AnythingOfType("*models.Warehouse")).
		Return(&common.DuplicateError{Msg: "warehouse_code already exists for this tenant"})

	c, rec := suite.newContext(http.MethodPost, "/api/warehouses", `{"code":"WH-001","name":"Main"}`)

	suite.NoError(suite.handlers.Create(c))

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.decode(rec)["error"], "already exists")
}

func (suite *WarehouseHandlersTestSuite) TestUpdateMergesPartialBody() {
	id := uuid.New()
	address := "1 Dock Road"
	capacity := 1200.0
	current := &models.Warehouse{
		ID:            id,
		TenantID:      suite.tenantID,
		WarehouseCode: "WH-001",
		Name:          "Main",
		Address:       &address,
		TotalCapacity: &capacity,
		IsActive:      true,
	}

	suite.service.On("GetByID", mock.Anything, suite.tenantID, id).Return(current, nil)
	suite.service.On("Update", mock.Anything, suite.tenantID, mock.AnythingOfType("*models.Warehouse")).
		Run(func(args mock.Arguments) {
			merged := args.Get(2).(*models.Warehouse)
			// Only name arrived in the body; everything else is preserved.
			suite.Equal("Renamed", merged.Name)
			suite.Equal("WH-001", merged.WarehouseCode)
			suite.Equal(&address, merged.Address)
			suite.Equal(&capacity, merged.TotalCapacity)
			suite.True(merged.IsActive)
		}).
		Return(nil)

	c, rec := suite.newContext(http.MethodPut, "/api/warehouses/"+id.String(), `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.NoError(suite.handlers.Update(c))
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *WarehouseHandlersTestSuite) TestUpdateStatusInactive() {
	id := uuid.New()
	current := &models.Warehouse{ID: id, TenantID: suite.tenantID, WarehouseCode: "WH-001", Name: "Main", IsActive: true}

	suite.service.On("GetByID", mock.Anything, suite.tenantID, id).Return(current, nil)
	suite.service.On("Update", mock.Anything, suite.tenantID, mock.AnythingOfType("*models.Warehouse")).
		Run(func(args mock.Arguments) {
			suite.False(args.Get(2).(*models.Warehouse).IsActive)
		}).
		Return(nil)

	c, rec := suite.newContext(http.MethodPut, "/api/warehouses/"+id.String(), `{"status":"inactive"}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.NoError(suite.handlers.Update(c))

	suite.Equal(http.StatusOK, rec.Code)
	data := suite.decode(rec)["data"].(map[string]any)
	suite.Equal("inactive", data["status"])
}

func (suite *WarehouseHandlersTestSuite) TestUpdateEmptyStatusRejected() {
	id := uuid.New()
	current := &models.Warehouse{ID: id, TenantID: suite.tenantID, WarehouseCode: "WH-001", Name: "Main", IsActive: false}

	suite.service.On("GetByID", mock.Anything, suite.tenantID, id).Return(current, nil)

	c, rec := suite.newContext(http.MethodPut, "/api/warehouses/"+id.String(), `{"status":""}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.NoError(suite.handlers.Update(c))

	// An empty status is malformed input, not an implicit reactivation.
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal(false, suite.decode(rec)["success"])
	suite.service.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WarehouseHandlersTestSuite) TestDeleteBlockedByDependents() {
	id := uuid.New()
	suite.service.On("Delete", mock.Anything, suite.tenantID, id).
		Return(&common.DependencyError{Resource: "warehouse", Dependent: "zones", Count: 2})

	c, rec := suite.newContext(http.MethodDelete, "/api/warehouses/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.NoError(suite.handlers.Delete(c))

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(suite.decode(rec)["error"], "dependent zones")
}

func (suite *WarehouseHandlersTestSuite) TestDeleteSuccess() {
	id := uuid.New()
	suite.service.On("Delete", mock.Anything, suite.tenantID, id).Return(nil)

	c, rec := suite.newContext(http.MethodDelete, "/api/warehouses/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	suite.NoError(suite.handlers.Delete(c))

	suite.Equal(http.StatusOK, rec.Code)
	body := suite.decode(rec)
	suite.Equal(true, body["success"])
	suite.Equal("warehouse deleted", body["message"])
}

func TestWarehouseHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseHandlersTestSuite))
}
