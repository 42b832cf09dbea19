package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/suite"

	"stockyard/internal/models"
)

type WarehouseRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     WarehouseRepository
	ctx      context.Context
	tenantID uuid.UUID
}

func (suite *WarehouseRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = NewWarehouseRepository(mock)
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
}

func (suite *WarehouseRepoTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func warehouseRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "tenant_id", "warehouse_code", "name", "address", "city", "country",
		"total_capacity", "is_active", "created_at", "updated_at",
	})
}

func (suite *WarehouseRepoTestSuite) TestCreate() {
	warehouse := &models.Warehouse{
		ID:            uuid.New(),
		TenantID:      suite.tenantID,
		WarehouseCode: "WH-001",
		Name:          "Main",
		IsActive:      true,
	}

	suite.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO warehouses")).
		WithArgs(warehouse.ID, warehouse.TenantID, "WH-001", "Main",
			warehouse.Address, warehouse.City, warehouse.Country, warehouse.TotalCapacity, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	suite.NoError(suite.repo.Create(suite.ctx, warehouse))
}

func (suite *WarehouseRepoTestSuite) TestGetByIDScopedToTenant() {
	id := uuid.New()
	now := time.Now()

	suite.mock.ExpectQuery(regexp.QuoteMeta("WHERE tenant_id = $1 AND id = $2")).
		WithArgs(suite.tenantID, id).
		WillReturnRows(warehouseRows().AddRow(
			id, suite.tenantID, "WH-001", "Main", nil, nil, nil, nil, true, now, now,
		))

	warehouse, err := suite.repo.GetByID(suite.ctx, suite.tenantID, id)

	suite.NoError(err)
	suite.Equal("WH-001", warehouse.WarehouseCode)
}

func (suite *WarehouseRepoTestSuite) TestGetByIDOtherTenantMisses() {
	id := uuid.New()
	otherTenant := uuid.New()

	suite.mock.ExpectQuery(regexp.QuoteMeta("WHERE tenant_id = $1 AND id = $2")).
		WithArgs(otherTenant, id).
		WillReturnError(pgx.ErrNoRows)

	warehouse, err := suite.repo.GetByID(suite.ctx, otherTenant, id)

	suite.Nil(warehouse)
	suite.ErrorIs(err, pgx.ErrNoRows)
}

func (suite *WarehouseRepoTestSuite) TestUpdateScopedByTenantAndID() {
	warehouse := &models.Warehouse{
		ID:            uuid.New(),
		TenantID:      suite.tenantID,
		WarehouseCode: "WH-001",
		Name:          "Renamed",
		IsActive:      true,
	}

	suite.mock.ExpectExec(regexp.QuoteMeta("UPDATE warehouses")).
		WithArgs("WH-001", "Renamed",
			warehouse.Address, warehouse.City, warehouse.Country, warehouse.TotalCapacity, true,
			suite.tenantID, warehouse.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	suite.NoError(suite.repo.Update(suite.ctx, warehouse))
}

func (suite *WarehouseRepoTestSuite) TestStatsAggregatesInSQL() {
	suite.mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE is_active)")).
		WithArgs(suite.tenantID).
		WillReturnRows(pgxmock.NewRows([]string{"count", "active", "inactive"}).AddRow(10, 7, 3))

	stats, err := suite.repo.Stats(suite.ctx, suite.tenantID)

	suite.NoError(err)
	suite.Equal(10, stats.Total)
	suite.Equal(7, stats.Active)
	suite.Equal(3, stats.Inactive)
}

func (suite *WarehouseRepoTestSuite) TestList() {
	now := time.Now()

	suite.mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(suite.tenantID, 50, 0).
		WillReturnRows(warehouseRows().
			AddRow(uuid.New(), suite.tenantID, "WH-001", "Main", nil, nil, nil, nil, true, now, now).
			AddRow(uuid.New(), suite.tenantID, "WH-002", "Overflow", nil, nil, nil, nil, false, now, now))

	warehouses, err := suite.repo.List(suite.ctx, suite.tenantID, 50, 0)

	suite.NoError(err)
	suite.Len(warehouses, 2)
}

func TestWarehouseRepoTestSuite(t *testing.T) {
	suite.Run(t, new(WarehouseRepoTestSuite))
}
