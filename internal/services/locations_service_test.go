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

type LocationServiceTestSuite struct {
	suite.Suite
	locations   *MockLocationRepository
	warehouses  *MockWarehouseRepository
	zones       *MockZoneRepository
	cache       *MockCacheService
	service     LocationService
	ctx         context.Context
	tenantID    uuid.UUID
	warehouseID uuid.UUID
}

func (suite *LocationServiceTestSuite) SetupTest() {
	suite.locations = new(MockLocationRepository)
	suite.warehouses = new(MockWarehouseRepository)
	suite.zones = new(MockZoneRepository)
	suite.cache = new(MockCacheService)
	suite.locations.Test(suite.T())
	suite.warehouses.Test(suite.T())
	suite.zones.Test(suite.T())
	suite.cache.Test(suite.T())
	suite.service = NewLocationService(suite.locations, suite.warehouses, suite.zones, suite.cache)
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
	suite.warehouseID = uuid.New()
}

func (suite *LocationServiceTestSuite) TearDownTest() {
	suite.locations.AssertExpectations(suite.T())
	suite.warehouses.AssertExpectations(suite.T())
	suite.zones.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func (suite *LocationServiceTestSuite) expectWarehouseOwned() {
	suite.warehouses.On("GetByID", suite.ctx, suite.tenantID, suite.warehouseID).
		Return(&models.Warehouse{ID: suite.warehouseID}, nil)
}

func (suite *LocationServiceTestSuite) TestCreateSuccess() {
	location := &models.Location{
		WarehouseID:  suite.warehouseID,
		LocationCode: "A-01-01",
		LocationType: models.LocationTypeBin,
	}

	suite.expectWarehouseOwned()
	suite.locations.On("GetByCode", suite.ctx, suite.warehouseID, "A-01-01").Return(nil, pgx.ErrNoRows)
	suite.locations.On("Create", suite.ctx, location).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "locations").Return(nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, location)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, location.ID)
}

func (suite *LocationServiceTestSuite) TestCreateInvalidType() {
	location := &models.Location{
		WarehouseID:  suite.warehouseID,
		LocationCode: "A-01-01",
		LocationType: "cupboard",
	}

	err := suite.service.Create(suite.ctx, suite.tenantID, location)

	var valErr *common.ValidationError
	suite.ErrorAs(err, &valErr)
}

func (suite *LocationServiceTestSuite) TestCreateZoneInDifferentWarehouse() {
	zoneID := uuid.New()
	location := &models.Location{
		WarehouseID:  suite.warehouseID,
		ZoneID:       &zoneID,
		LocationCode: "A-01-01",
		LocationType: models.LocationTypeRack,
	}

	suite.expectWarehouseOwned()
	suite.zones.On("GetByID", suite.ctx, suite.tenantID, zoneID).
		Return(&models.Zone{ID: zoneID, WarehouseID: uuid.New()}, nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, location)

	var valErr *common.ValidationError
	suite.ErrorAs(err, &valErr)
	suite.Contains(valErr.Msg, "different warehouse")
	suite.locations.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *LocationServiceTestSuite) TestCreateBarcodeTakenGlobally() {
	barcode := "LOC-0001"
	location := &models.Location{
		WarehouseID:  suite.warehouseID,
		LocationCode: "A-01-01",
		LocationType: models.LocationTypeBin,
		Barcode:      &barcode,
	}

	suite.expectWarehouseOwned()
	suite.locations.On("GetByCode", suite.ctx, suite.warehouseID, "A-01-01").Return(nil, pgx.ErrNoRows)
	// The barcode collides with a location of a different warehouse; the
	// identifier namespace is global.
	suite.locations.On("GetByBarcode", suite.ctx, barcode).
		Return(&models.Location{ID: uuid.New(), Barcode: &barcode}, nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, location)

	var dupErr *common.DuplicateError
	suite.ErrorAs(err, &dupErr)
	suite.Contains(dupErr.Msg, "barcode")
}

func (suite *LocationServiceTestSuite) TestUpdateKeepsOwnBarcode() {
	id := uuid.New()
	barcode := "LOC-0001"
	location := &models.Location{
		ID:           id,
		WarehouseID:  suite.warehouseID,
		LocationCode: "A-01-01",
		LocationType: models.LocationTypeBin,
		Barcode:      &barcode,
	}

	suite.locations.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Location{ID: id}, nil)
	suite.expectWarehouseOwned()
	suite.locations.On("GetByCode", suite.ctx, suite.warehouseID, "A-01-01").
		Return(&models.Location{ID: id}, nil)
	suite.locations.On("GetByBarcode", suite.ctx, barcode).
		Return(&models.Location{ID: id, Barcode: &barcode}, nil)
	suite.locations.On("Update", suite.ctx, suite.tenantID, location).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "locations").Return(nil)

	suite.NoError(suite.service.Update(suite.ctx, suite.tenantID, location))
}

func (suite *LocationServiceTestSuite) TestDeleteSuccess() {
	id := uuid.New()

	suite.locations.On("GetByID", suite.ctx, suite.tenantID, id).Return(&models.Location{ID: id}, nil)
	suite.locations.On("Delete", suite.ctx, suite.tenantID, id).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "locations").Return(nil)

	suite.NoError(suite.service.Delete(suite.ctx, suite.tenantID, id))
}

func TestLocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LocationServiceTestSuite))
}
