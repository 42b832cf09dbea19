package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"stockyard/internal/common"
	"stockyard/internal/models"
)

type ZoneServiceTestSuite struct {
	suite.Suite
	zones       *MockZoneRepository
	warehouses  *MockWarehouseRepository
	locations   *MockLocationRepository
	cache       *MockCacheService
	service     ZoneService
	ctx         context.Context
	tenantID    uuid.UUID
	warehouseID uuid.UUID
}

func (suite *ZoneServiceTestSuite) SetupTest() {
	suite.zones = new(MockZoneRepository)
	suite.warehouses = new(MockWarehouseRepository)
	suite.locations = new(MockLocationRepository)
	suite.cache = new(MockCacheService)
	suite.zones.Test(suite.T())
	suite.warehouses.Test(suite.T())
	suite.locations.Test(suite.T())
	suite.cache.Test(suite.T())
	suite.service = NewZoneService(suite.zones, suite.warehouses, suite.locations, suite.cache)
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
	suite.warehouseID = uuid.New()
}

func (suite *ZoneServiceTestSuite) TearDownTest() {
	suite.zones.AssertExpectations(suite.T())
	suite.warehouses.AssertExpectations(suite.T())
	suite.locations.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func (suite *ZoneServiceTestSuite) TestCreateSuccess() {
	zone := &models.Zone{WarehouseID: suite.warehouseID, ZoneCode: "Z-A", Name: "Ambient"}

	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, suite.warehouseID).
		Return(&models.Warehouse{ID: suite.warehouseID}, nil)
	suite.zones.On("GetByCode", suite.ctx, suite.warehouseID, "Z-A").Return(nil, pgx.ErrNoRows)
	suite.zones.On("Create", suite.ctx, zone).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "zones").Return(nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, zone)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, zone.ID)
}

func (suite *ZoneServiceTestSuite) TestCreateWarehouseOfAnotherTenant() {
	zone := &models.Zone{WarehouseID: suite.warehouseID, ZoneCode: "Z-A", Name: "Ambient"}

	// Scoped lookup misses: the warehouse exists but under another tenant.
	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, suite.warehouseID).Return(nil, pgx.ErrNoRows)

	err := suite.service.Create(suite.ctx, suite.tenantID, zone)

	var valErr *common.ValidationError
	suite.ErrorAs(err, &valErr)
	suite.Contains(valErr.Msg, "warehouse_id")
	suite.zones.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ZoneServiceTestSuite) TestCreateTemperatureBoundsOnlyWhenControlled() {
	minTemp, maxTemp := 8.0, 2.0
	zone := &models.Zone{
		WarehouseID:    suite.warehouseID,
		ZoneCode:       "Z-C",
		Name:           "Chilled",
		MinTemperature: &minTemp,
		MaxTemperature: &maxTemp,
	}

	// Bounds are inverted but the control flag is off, so they are ignored.
	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, suite.warehouseID).
		Return(&models.Warehouse{ID: suite.warehouseID}, nil)
	suite.zones.On("GetByCode", suite.ctx, suite.warehouseID, "Z-C").Return(nil, pgx.ErrNoRows)
	suite.zones.On("Create", suite.ctx, zone).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "zones").Return(nil)

	suite.NoError(suite.service.Create(suite.ctx, suite.tenantID, zone))

	zone.TemperatureControlled = true
	var valErr *common.ValidationError
	suite.ErrorAs(suite.service.Create(suite.ctx, suite.tenantID, zone), &valErr)
}

func (suite *ZoneServiceTestSuite) TestCreateDuplicateCodeInWarehouse() {
	zone := &models.Zone{WarehouseID: suite.warehouseID, ZoneCode: "Z-A", Name: "Ambient"}

	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, suite.warehouseID).
		Return(&models.Warehouse{ID: suite.warehouseID}, nil)
	suite.zones.On("GetByCode", suite.ctx, suite.warehouseID, "Z-A").
		Return(&models.Zone{ID: uuid.New(), ZoneCode: "Z-A"}, nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, zone)

	var dupErr *common.DuplicateError
	suite.ErrorAs(err, &dupErr)
}

func (suite *ZoneServiceTestSuite) TestDeleteBlockedByLocations() {
	id := uuid.New()

	suite.zones.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Zone{ID: id}, nil)
	suite.locations.On("CountByZone", suite.ctx, id).Return(2, nil)

	err := suite.service.Delete(suite.ctx, suite.tenantID, id)

	var depErr *common.DependencyError
	suite.ErrorAs(err, &depErr)
	suite.Equal("locations", depErr.Dependent)
	suite.zones.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ZoneServiceTestSuite) TestDeleteSuccess() {
	id := uuid.New()

	suite.zones.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Zone{ID: id}, nil)
	suite.locations.On("CountByZone", suite.ctx, id).Return(0, nil)
	suite.zones.On("Delete", suite.ctx, suite.tenantID, id).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "zones").Return(nil)

	suite.NoError(suite.service.Delete(suite.ctx, suite.tenantID, id))
}

func TestZoneServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ZoneServiceTestSuite))
}
