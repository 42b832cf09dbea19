package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type UOMRepository interface {
	Create(ctx context.Context, uom *models.UOM) error
	// GetByID traverses uom -> item -> customer -> tenant.
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.UOM, error)
	GetByCode(ctx context.Context, itemID uuid.UUID, code string) (*models.UOM, error)
	Update(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, itemID *uuid.UUID, limit, offset int) ([]*models.UOM, error)
	CountByItem(ctx context.Context, itemID uuid.UUID) (int, error)
}

type uomRepo struct {
	db Database
}

func NewUOMRepository(db Database) UOMRepository {
	return &uomRepo{db: db}
}

const uomColumns = `u.id, u.item_id, u.uom_code, u.name, u.conversion_factor, u.base_uom_id, u.is_active, u.created_at, u.updated_at`

func scanUOM(row interface{ Scan(dest ...any) error }) (*models.UOM, error) {
	u := &models.UOM{}
	err := row.Scan(&u.ID, &u.ItemID, &u.UOMCode, &u.Name, &u.ConversionFactor, &u.BaseUOMID, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *uomRepo) Create(ctx context.Context, uom *models.UOM) error {
	query := `
		INSERT INTO uoms (id, item_id, uom_code, name, conversion_factor, base_uom_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, uom.ID, uom.ItemID, uom.UOMCode, uom.Name, uom.ConversionFactor, uom.BaseUOMID, uom.IsActive)
	return err
}

func (r *uomRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.UOM, error) {
	query := `
		SELECT ` + uomColumns + `
		FROM uoms u
		JOIN items i ON i.id = u.item_id
		JOIN customers c ON c.id = i.customer_id
		WHERE c.tenant_id = $1 AND u.id = $2
	`
	return scanUOM(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *uomRepo) GetByCode(ctx context.Context, itemID uuid.UUID, code string) (*models.UOM, error) {
	query := `
		SELECT ` + uomColumns + `
		FROM uoms u
		WHERE u.item_id = $1 AND u.uom_code = $2
	`
	return scanUOM(r.db.QueryRow(ctx, query, itemID, code))
}

func (r *uomRepo) Update(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error {
	query := `
		UPDATE uoms u
		SET uom_code = $1, name = $2, conversion_factor = $3, base_uom_id = $4, is_active = $5, updated_at = NOW()
		FROM items i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = u.item_id AND c.tenant_id = $6 AND u.id = $7
	`
	_, err := r.db.Exec(ctx, query, uom.UOMCode, uom.Name, uom.ConversionFactor, uom.BaseUOMID, uom.IsActive, tenantID, uom.ID)
	return err
}

func (r *uomRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		DELETE FROM uoms u
		USING items i, customers c
		WHERE i.id = u.item_id AND c.id = i.customer_id AND c.tenant_id = $1 AND u.id = $2
	`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *uomRepo) List(ctx context.Context, tenantID uuid.UUID, itemID *uuid.UUID, limit, offset int) ([]*models.UOM, error) {
	query := `
		SELECT ` + uomColumns + `
		FROM uoms u
		JOIN items i ON i.id = u.item_id
		JOIN customers c ON c.id = i.customer_id
		WHERE c.tenant_id = $1
		  AND ($2::uuid IS NULL OR u.item_id = $2)
		ORDER BY u.created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uoms []*models.UOM
	for rows.Next() {
		u, err := scanUOM(rows)
		if err != nil {
			return nil, err
		}
		uoms = append(uoms, u)
	}
	return uoms, rows.Err()
}

func (r *uomRepo) CountByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM uoms WHERE item_id = $1`
	err := r.db.QueryRow(ctx, query, itemID).Scan(&count)
	return count, err
}
