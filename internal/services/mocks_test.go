package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"stockyard/internal/models"
)

// Hand-written mocks for the repository interfaces and cache used across
// the service test suites.

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) Create(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Warehouse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Warehouse, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Update(ctx context.Context, warehouse *models.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockWarehouseRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Warehouse, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.WarehouseStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WarehouseStats), args.Error(1)
}

type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) Create(ctx context.Context, zone *models.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}

func (m *MockZoneRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Zone, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Zone), args.Error(1)
}

func (m *MockZoneRepository) GetByCode(ctx context.Context, warehouseID uuid.UUID, code string) (*models.Zone, error) {
	args := m.Called(ctx, warehouseID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Zone), args.Error(1)
}

func (m *MockZoneRepository) Update(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error {
	args := m.Called(ctx, tenantID, zone)
	return args.Error(0)
}

func (m *MockZoneRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockZoneRepository) List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Zone, error) {
	args := m.Called(ctx, tenantID, warehouseID, limit, offset)
	return args.Get(0).([]*models.Zone), args.Error(1)
}

func (m *MockZoneRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	args := m.Called(ctx, warehouseID)
	return args.Int(0), args.Error(1)
}

func (m *MockZoneRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.ZoneStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ZoneStats), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, location *models.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Location, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByCode(ctx context.Context, warehouseID uuid.UUID, code string) (*models.Location, error) {
	args := m.Called(ctx, warehouseID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByBarcode(ctx context.Context, barcode string) (*models.Location, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) GetByQRCode(ctx context.Context, qrCode string) (*models.Location, error) {
	args := m.Called(ctx, qrCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Location), args.Error(1)
}

func (m *MockLocationRepository) Update(ctx context.Context, tenantID uuid.UUID, location *models.Location) error {
	args := m.Called(ctx, tenantID, location)
	return args.Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockLocationRepository) List(ctx context.Context, tenantID uuid.UUID, warehouseID, zoneID *uuid.UUID, limit, offset int) ([]*models.Location, error) {
	args := m.Called(ctx, tenantID, warehouseID, zoneID, limit, offset)
	return args.Get(0).([]*models.Location), args.Error(1)
}

func (m *MockLocationRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	args := m.Called(ctx, warehouseID)
	return args.Int(0), args.Error(1)
}

func (m *MockLocationRepository) CountByZone(ctx context.Context, zoneID uuid.UUID) (int, error) {
	args := m.Called(ctx, zoneID)
	return args.Int(0), args.Error(1)
}

func (m *MockLocationRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.LocationStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LocationStats), args.Error(1)
}

type MockDoorRepository struct {
	mock.Mock
}

func (m *MockDoorRepository) Create(ctx context.Context, door *models.Door) error {
	args := m.Called(ctx, door)
	return args.Error(0)
}

func (m *MockDoorRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Door, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Door), args.Error(1)
}

func (m *MockDoorRepository) GetByNumber(ctx context.Context, warehouseID uuid.UUID, doorNumber string) (*models.Door, error) {
	args := m.Called(ctx, warehouseID, doorNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Door), args.Error(1)
}

func (m *MockDoorRepository) Update(ctx context.Context, tenantID uuid.UUID, door *models.Door) error {
	args := m.Called(ctx, tenantID, door)
	return args.Error(0)
}

func (m *MockDoorRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockDoorRepository) List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Door, error) {
	args := m.Called(ctx, tenantID, warehouseID, limit, offset)
	return args.Get(0).([]*models.Door), args.Error(1)
}

func (m *MockDoorRepository) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	args := m.Called(ctx, warehouseID)
	return args.Int(0), args.Error(1)
}

func (m *MockDoorRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.DoorStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DoorStats), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Customer, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.CustomerStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomerStats), args.Error(1)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByEmail(ctx context.Context, tenantID, customerID uuid.UUID, email string) (*models.Supplier, error) {
	args := m.Called(ctx, tenantID, customerID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Supplier, error) {
	args := m.Called(ctx, tenantID, customerID, limit, offset)
	return args.Get(0).([]*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

func (m *MockSupplierRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.SupplierStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupplierStats), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Item, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) GetByCode(ctx context.Context, customerID uuid.UUID, code string) (*models.Item, error) {
	args := m.Called(ctx, customerID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, tenantID uuid.UUID, item *models.Item) error {
	args := m.Called(ctx, tenantID, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockItemRepository) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Item, error) {
	args := m.Called(ctx, tenantID, customerID, limit, offset)
	return args.Get(0).([]*models.Item), args.Error(1)
}

func (m *MockItemRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.ItemStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemStats), args.Error(1)
}

type MockUOMRepository struct {
	mock.Mock
}

func (m *MockUOMRepository) Create(ctx context.Context, uom *models.UOM) error {
	args := m.Called(ctx, uom)
	return args.Error(0)
}

func (m *MockUOMRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.UOM, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UOM), args.Error(1)
}

func (m *MockUOMRepository) GetByCode(ctx context.Context, itemID uuid.UUID, code string) (*models.UOM, error) {
	args := m.Called(ctx, itemID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UOM), args.Error(1)
}

func (m *MockUOMRepository) Update(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error {
	args := m.Called(ctx, tenantID, uom)
	return args.Error(0)
}

func (m *MockUOMRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockUOMRepository) List(ctx context.Context, tenantID uuid.UUID, itemID *uuid.UUID, limit, offset int) ([]*models.UOM, error) {
	args := m.Called(ctx, tenantID, itemID, limit, offset)
	return args.Get(0).([]*models.UOM), args.Error(1)
}

func (m *MockUOMRepository) CountByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	args := m.Called(ctx, itemID)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByAuthID(ctx context.Context, authID string) (*models.User, error) {
	args := m.Called(ctx, authID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.User, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*models.UserStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserStats), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetStats(ctx context.Context, tenantID uuid.UUID, resource string, dest any) error {
	args := m.Called(ctx, tenantID, resource, dest)
	return args.Error(0)
}

func (m *MockCacheService) SetStats(ctx context.Context, tenantID uuid.UUID, resource string, stats any, ttl time.Duration) error {
	args := m.Called(ctx, tenantID, resource, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateStats(ctx context.Context, tenantID uuid.UUID, resource string) error {
	args := m.Called(ctx, tenantID, resource)
	return args.Error(0)
}

func (m *MockCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
