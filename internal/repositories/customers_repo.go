package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error)
	GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.CustomerStats, error)
}

type customerRepo struct {
	db Database
}

func NewCustomerRepository(db Database) CustomerRepository {
	return &customerRepo{db: db}
}

const customerColumns = `id, tenant_id, customer_code, name, email, phone, billing_address, shipping_address, is_active, created_at, updated_at`

func scanCustomer(row interface{ Scan(dest ...any) error }) (*models.Customer, error) {
	c := &models.Customer{}
	err := row.Scan(&c.ID, &c.TenantID, &c.CustomerCode, &c.Name, &c.Email, &c.Phone, &c.BillingAddress, &c.ShippingAddress, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, tenant_id, customer_code, name, email, phone, billing_address, shipping_address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, customer.ID, customer.TenantID, customer.CustomerCode, customer.Name, customer.Email, customer.Phone, customer.BillingAddress, customer.ShippingAddress, customer.IsActive)
	return err
}

func (r *customerRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1 AND id = $2
	`
	return scanCustomer(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *customerRepo) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1 AND customer_code = $2
	`
	return scanCustomer(r.db.QueryRow(ctx, query, tenantID, code))
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET customer_code = $1, name = $2, email = $3, phone = $4, billing_address = $5, shipping_address = $6, is_active = $7, updated_at = NOW()
		WHERE tenant_id = $8 AND id = $9
	`
	_, err := r.db.Exec(ctx, query, customer.CustomerCode, customer.Name, customer.Email, customer.Phone, customer.BillingAddress, customer.ShippingAddress, customer.IsActive, customer.TenantID, customer.ID)
	return err
}

func (r *customerRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM customers WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *customerRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.CustomerStats, error) {
	stats := &models.CustomerStats{}
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active), COUNT(*) FILTER (WHERE NOT is_active)
		FROM customers
		WHERE tenant_id = $1
	`
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&stats.Total, &stats.Active, &stats.Inactive)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
