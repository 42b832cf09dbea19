package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error)
	GetByEmail(ctx context.Context, tenantID, customerID uuid.UUID, email string) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Supplier, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.SupplierStats, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

const supplierColumns = `id, tenant_id, customer_id, name, email, phone, address, is_active, created_at, updated_at`

func scanSupplier(row interface{ Scan(dest ...any) error }) (*models.Supplier, error) {
	s := &models.Supplier{}
	err := row.Scan(&s.ID, &s.TenantID, &s.CustomerID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (id, tenant_id, customer_id, name, email, phone, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.TenantID, supplier.CustomerID, supplier.Name, supplier.Email, supplier.Phone, supplier.Address, supplier.IsActive)
	return err
}

func (r *supplierRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE tenant_id = $1 AND id = $2
	`
	return scanSupplier(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *supplierRepo) GetByEmail(ctx context.Context, tenantID, customerID uuid.UUID, email string) (*models.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE tenant_id = $1 AND customer_id = $2 AND email = $3
	`
	return scanSupplier(r.db.QueryRow(ctx, query, tenantID, customerID, email))
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET customer_id = $1, name = $2, email = $3, phone = $4, address = $5, is_active = $6, updated_at = NOW()
		WHERE tenant_id = $7 AND id = $8
	`
	_, err := r.db.Exec(ctx, query, supplier.CustomerID, supplier.Name, supplier.Email, supplier.Phone, supplier.Address, supplier.IsActive, supplier.TenantID, supplier.ID)
	return err
}

func (r *supplierRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM suppliers WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *supplierRepo) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE tenant_id = $1
		  AND ($2::uuid IS NULL OR customer_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepo) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM suppliers WHERE customer_id = $1`
	err := r.db.QueryRow(ctx, query, customerID).Scan(&count)
	return count, err
}

func (r *supplierRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.SupplierStats, error) {
	stats := &models.SupplierStats{}
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COUNT(*) FILTER (WHERE NOT is_active)
		FROM suppliers
		WHERE tenant_id = $1
	`
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&stats.Total, &stats.Active, &stats.Inactive)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
