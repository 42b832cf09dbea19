package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"stockyard/internal/caching"
	"stockyard/internal/common"
	"stockyard/internal/models"
)

type WarehouseServiceTestSuite struct {
	suite.Suite
	warehouses *MockWarehouseRepository
	zones      *MockZoneRepository
	locations  *MockLocationRepository
	doors      *MockDoorRepository
	cache      *MockCacheService
	service    WarehouseService
	ctx        context.Context
	tenantID   uuid.UUID
}

func (suite *WarehouseServiceTestSuite) SetupTest() {
	suite.warehouses = new(MockWarehouseRepository)
	suite.zones = new(MockZoneRepository)
	suite.locations = new(MockLocationRepository)
	suite.doors = new(MockDoorRepository)
	suite.cache = new(MockCacheService)
	suite.warehouses.Test(suite.T())
	suite.zones.Test(suite.T())
	suite.locations.Test(suite.T())
	suite.doors.Test(suite.T())
	suite.cache.Test(suite.T())
	suite.service = NewWarehouseService(suite.warehouses, suite.zones, suite.locations, suite.doors, suite.cache)
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
}

func (suite *WarehouseServiceTestSuite) TearDownTest() {
	suite.warehouses.AssertExpectations(suite.T())
	suite.zones.AssertExpectations(suite.T())
	suite.locations.AssertExpectations(suite.T())
	suite.doors.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func (suite *WarehouseServiceTestSuite) TestCreateSuccess() {
	warehouse := &models.Warehouse{WarehouseCode: "WH-001", Name: "Main"}

	suite.warehouses.On("GetByCode", suite.ctx, suite.tenantID, "WH-001").Return(nil, pgx.ErrNoRows)
	suite.warehouses.On("Create", suite.ctx, warehouse).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "warehouses").Return(nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, warehouse)

	suite.NoError(err)
	suite.Equal(suite.tenantID, warehouse.TenantID)
	suite.NotEqual(uuid.Nil, warehouse.ID)
}

func (suite *WarehouseServiceTestSuite) TestCreateDuplicateCode() {
	warehouse := &models.Warehouse{WarehouseCode: "WH-001", Name: "Main"}
	existing := &models.Warehouse{ID: uuid.New(), WarehouseCode: "WH-001"}

	suite.warehouses.On("GetByCode", suite.ctx, suite.tenantID, "WH-001").Return(existing, nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, warehouse)

	var dupErr *common.DuplicateError
	suite.ErrorAs(err, &dupErr)
	suite.warehouses.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestCreateMissingCode() {
	err := suite.service.Create(suite.ctx, suite.tenantID, &models.Warehouse{Name: "Main"})

	var valErr *common.ValidationError
	suite.ErrorAs(err, &valErr)
}

func (suite *WarehouseServiceTestSuite) TestCreateNegativeCapacity() {
	capacity := -10.0
	err := suite.service.Create(suite.ctx, suite.tenantID, &models.Warehouse{
		WarehouseCode: "WH-001",
		Name:          "Main",
		TotalCapacity: &capacity,
	})

	var valErr *common.ValidationError
	suite.ErrorAs(err, &valErr)
}

func (suite *WarehouseServiceTestSuite) TestUpdateKeepsOwnCode() {
	id := uuid.New()
	warehouse := &models.Warehouse{ID: id, WarehouseCode: "WH-001", Name: "Renamed"}

	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Warehouse{ID: id}, nil)
	suite.warehouses.On("GetByCode", suite.ctx, suite.tenantID, "WH-001").
		Return(&models.Warehouse{ID: id, WarehouseCode: "WH-001"}, nil)
	suite.warehouses.On("Update", suite.ctx, warehouse).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "warehouses").Return(nil)

	err := suite.service.Update(suite.ctx, suite.tenantID, warehouse)

	suite.NoError(err)
}

func (suite *WarehouseServiceTestSuite) TestUpdateTakesAnotherRowsCode() {
	id := uuid.New()
	warehouse := &models.Warehouse{ID: id, WarehouseCode: "WH-002", Name: "Renamed"}

	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Warehouse{ID: id}, nil)
	suite.warehouses.On("GetByCode", suite.ctx, suite.tenantID, "WH-002").
		Return(&models.Warehouse{ID: uuid.New(), WarehouseCode: "WH-002"}, nil)

	err := suite.service.Update(suite.ctx, suite.tenantID, warehouse)

	var dupErr *common.DuplicateError
	suite.ErrorAs(err, &dupErr)
	suite.warehouses.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestUpdateNotFound() {
	id := uuid.New()
	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, id).Return(nil, pgx.ErrNoRows)

	err := suite.service.Update(suite.ctx, suite.tenantID, &models.Warehouse{ID: id, WarehouseCode: "WH-001", Name: "X"})

	var notFoundErr *common.NotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

func (suite *WarehouseServiceTestSuite) TestDeleteBlockedByZones() {
	id := uuid.New()

	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Warehouse{ID: id}, nil)
	suite.zones.On("CountByWarehouse", suite.ctx, id).Return(3, nil)

	err := suite.service.Delete(suite.ctx, suite.tenantID, id)

	var depErr *common.DependencyError
	suite.ErrorAs(err, &depErr)
	suite.Equal("zones", depErr.Dependent)
	suite.Equal(3, depErr.Count)
	suite.warehouses.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WarehouseServiceTestSuite) TestDeleteBlockedByDoors() {
	id := uuid.New()

	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Warehouse{ID: id}, nil)
	suite.zones.On("CountByWarehouse", suite.ctx, id).Return(0, nil)
	suite.locations.On("CountByWarehouse", suite.ctx, id).Return(0, nil)
	suite.doors.On("CountByWarehouse", suite.ctx, id).Return(1, nil)

	err := suite.service.Delete(suite.ctx, suite.tenantID, id)

	var depErr *common.DependencyError
	suite.ErrorAs(err, &depErr)
	suite.Equal("doors", depErr.Dependent)
}

func (suite *WarehouseServiceTestSuite) TestDeleteSuccess() {
	id := uuid.New()

	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Warehouse{ID: id}, nil)
	suite.zones.On("CountByWarehouse", suite.ctx, id).Return(0, nil)
	suite.locations.On("CountByWarehouse", suite.ctx, id).Return(0, nil)
	suite.doors.On("CountByWarehouse", suite.ctx, id).Return(0, nil)
	suite.warehouses.On("Delete", suite.ctx, suite.tenantID, id).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "warehouses").Return(nil)

	err := suite.service.Delete(suite.ctx, suite.tenantID, id)

	suite.NoError(err)
}

func (suite *WarehouseServiceTestSuite) TestStatsCacheMissComputesAndCaches() {
	stats := &models.WarehouseStats{Total: 5, Active: 4, Inactive: 1}

	suite.cache.On("GetStats", suite.ctx, suite.tenantID, "warehouses", mock.Anything).Return(caching.ErrCacheMiss)
	suite.warehouses.On("Stats", suite.ctx, suite.tenantID).Return(stats, nil)
	suite.cache.On("SetStats", suite.ctx, suite.tenantID, "warehouses", stats, mock.Anything).Return(nil)

	got, err := suite.service.Stats(suite.ctx, suite.tenantID)

	suite.NoError(err)
	suite.Equal(stats, got)
}

func (suite *WarehouseServiceTestSuite) TestStatsCacheHitSkipsDatabase() {
	suite.cache.On("GetStats", suite.ctx, suite.tenantID, "warehouses", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(3).(*models.WarehouseStats)
			*dest = models.WarehouseStats{Total: 7, Active: 7}
		}).
		Return(nil)

	got, err := suite.service.Stats(suite.ctx, suite.tenantID)

	suite.NoError(err)
	suite.Equal(7, got.Total)
	suite.warehouses.AssertNotCalled(suite.T(), "Stats", mock.Anything, mock.Anything)
}

func TestWarehouseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseServiceTestSuite))
}
