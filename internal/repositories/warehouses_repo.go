package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Warehouse, error)
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Warehouse, error)
	Update(ctx context.Context, warehouse *models.Warehouse) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Warehouse, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.WarehouseStats, error)
}

type warehouseRepo struct {
	db Database
}

func NewWarehouseRepository(db Database) WarehouseRepository {
	return &warehouseRepo{db: db}
}

const warehouseColumns = `id, tenant_id, warehouse_code, name, address, city, country, total_capacity, is_active, created_at, updated_at`

func scanWarehouse(row interface{ Scan(dest ...any) error }) (*models.Warehouse, error) {
	w := &models.Warehouse{}
	err := row.Scan(&w.ID, &w.TenantID, &w.WarehouseCode, &w.Name, &w.Address, &w.City, &w.Country, &w.TotalCapacity, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *warehouseRepo) Create(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, tenant_id, warehouse_code, name, address, city, country, total_capacity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, warehouse.ID, warehouse.TenantID, warehouse.WarehouseCode, warehouse.Name, warehouse.Address, warehouse.City, warehouse.Country, warehouse.TotalCapacity, warehouse.IsActive)
	return err
}

func (r *warehouseRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE tenant_id = $1 AND id = $2
	`
	return scanWarehouse(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *warehouseRepo) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE tenant_id = $1 AND warehouse_code = $2
	`
	return scanWarehouse(r.db.QueryRow(ctx, query, tenantID, code))
}

func (r *warehouseRepo) Update(ctx context.Context, warehouse *models.Warehouse) error {
	query := `
		UPDATE warehouses
		SET warehouse_code = $1, name = $2, address = $3, city = $4, country = $5, total_capacity = $6, is_active = $7, updated_at = NOW()
		WHERE tenant_id = $8 AND id = $9
	`
	_, err := r.db.Exec(ctx, query, warehouse.WarehouseCode, warehouse.Name, warehouse.Address, warehouse.City, warehouse.Country, warehouse.TotalCapacity, warehouse.IsActive, warehouse.TenantID, warehouse.ID)
	return err
}

func (r *warehouseRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM warehouses WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *warehouseRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*models.Warehouse
	for rows.Next() {
		w, err := scanWarehouse(rows)
		if err != nil {
			return nil, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

func (r *warehouseRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.WarehouseStats, error) {
	stats := &models.WarehouseStats{}
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COUNT(*) FILTER (WHERE NOT is_active)
		FROM warehouses
		WHERE tenant_id = $1
	`
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&stats.Total, &stats.Active, &stats.Inactive)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
