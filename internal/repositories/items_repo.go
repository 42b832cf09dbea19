package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	// GetByID resolves the item through its customer so rows outside the
	// caller's tenant are never returned.
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Item, error)
	GetByCode(ctx context.Context, customerID uuid.UUID, code string) (*models.Item, error)
	Update(ctx context.Context, tenantID uuid.UUID, item *models.Item) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Item, error)
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.ItemStats, error)
}

type itemRepo struct {
	db Database
}

func NewItemRepository(db Database) ItemRepository {
	return &itemRepo{db: db}
}

const itemColumns = `i.id, i.customer_id, i.item_code, i.name, i.description, i.unit_cost, i.unit_price, i.weight_kg, i.length_cm, i.width_cm, i.height_cm, i.lot_tracked, i.serial_tracked, i.reorder_point, i.reorder_quantity, i.is_active, i.created_at, i.updated_at`

func scanItem(row interface{ Scan(dest ...any) error }) (*models.Item, error) {
	i := &models.Item{}
	err := row.Scan(&i.ID, &i.CustomerID, &i.ItemCode, &i.Name, &i.Description, &i.UnitCost, &i.UnitPrice, &i.WeightKG, &i.LengthCM, &i.WidthCM, &i.HeightCM, &i.LotTracked, &i.SerialTracked, &i.ReorderPoint, &i.ReorderQuantity, &i.IsActive, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *itemRepo) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, customer_id, item_code, name, description, unit_cost, unit_price, weight_kg, length_cm, width_cm, height_cm, lot_tracked, serial_tracked, reorder_point, reorder_quantity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.CustomerID, item.ItemCode, item.Name, item.Description, item.UnitCost, item.UnitPrice, item.WeightKG, item.LengthCM, item.WidthCM, item.HeightCM, item.LotTracked, item.SerialTracked, item.ReorderPoint, item.ReorderQuantity, item.IsActive)
	return err
}

func (r *itemRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.tenant_id = $1 AND i.id = $2
	`
	return scanItem(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *itemRepo) GetByCode(ctx context.Context, customerID uuid.UUID, code string) (*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		WHERE i.customer_id = $1 AND i.item_code = $2
	`
	return scanItem(r.db.QueryRow(ctx, query, customerID, code))
}

func (r *itemRepo) Update(ctx context.Context, tenantID uuid.UUID, item *models.Item) error {
	query := `
		UPDATE items i
		SET item_code = $1, name = $2, description = $3, unit_cost = $4, unit_price = $5, weight_kg = $6, length_cm = $7, width_cm = $8, height_cm = $9, lot_tracked = $10, serial_tracked = $11, reorder_point = $12, reorder_quantity = $13, is_active = $14, updated_at = NOW()
		FROM customers c
		WHERE c.id = i.customer_id AND c.tenant_id = $15 AND i.id = $16
	`
	_, err := r.db.Exec(ctx, query, item.ItemCode, item.Name, item.Description, item.UnitCost, item.UnitPrice, item.WeightKG, item.LengthCM, item.WidthCM, item.HeightCM, item.LotTracked, item.SerialTracked, item.ReorderPoint, item.ReorderQuantity, item.IsActive, tenantID, item.ID)
	return err
}

func (r *itemRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		DELETE FROM items i
		USING customers c
		WHERE c.id = i.customer_id AND c.tenant_id = $1 AND i.id = $2
	`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *itemRepo) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.tenant_id = $1
		  AND ($2::uuid IS NULL OR i.customer_id = $2)
		ORDER BY i.created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *itemRepo) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM items WHERE customer_id = $1`
	err := r.db.QueryRow(ctx, query, customerID).Scan(&count)
	return count, err
}

func (r *itemRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.ItemStats, error) {
	stats := &models.ItemStats{}
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE i.is_active),
		       COUNT(*) FILTER (WHERE i.lot_tracked),
		       COUNT(*) FILTER (WHERE i.serial_tracked)
		FROM items i
		JOIN customers c ON c.id = i.customer_id
		WHERE c.tenant_id = $1
	`
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&stats.Total, &stats.Active, &stats.LotTracked, &stats.SerialTracked)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
