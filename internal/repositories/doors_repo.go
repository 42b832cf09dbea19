package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type DoorRepository interface {
	Create(ctx context.Context, door *models.Door) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Door, error)
	GetByNumber(ctx context.Context, warehouseID uuid.UUID, doorNumber string) (*models.Door, error)
	Update(ctx context.Context, tenantID uuid.UUID, door *models.Door) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Door, error)
	CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.DoorStats, error)
}

type doorRepo struct {
	db Database
}

func NewDoorRepository(db Database) DoorRepository {
	return &doorRepo{db: db}
}

const doorColumns = `d.id, d.warehouse_id, d.door_number, d.door_type, d.width_cm, d.height_cm, d.equipment, d.is_active, d.created_at, d.updated_at`

func scanDoor(row interface{ Scan(dest ...any) error }) (*models.Door, error) {
	d := &models.Door{}
	err := row.Scan(&d.ID, &d.WarehouseID, &d.DoorNumber, &d.DoorType, &d.WidthCM, &d.HeightCM, &d.Equipment, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *doorRepo) Create(ctx context.Context, door *models.Door) error {
	query := `
		INSERT INTO doors (id, warehouse_id, door_number, door_type, width_cm, height_cm, equipment, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, door.ID, door.WarehouseID, door.DoorNumber, door.DoorType, door.WidthCM, door.HeightCM, door.Equipment, door.IsActive)
	return err
}

func (r *doorRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Door, error) {
	query := `
		SELECT ` + doorColumns + `
		FROM doors d
		JOIN warehouses w ON w.id = d.warehouse_id
		WHERE w.tenant_id = $1 AND d.id = $2
	`
	return scanDoor(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *doorRepo) GetByNumber(ctx context.Context, warehouseID uuid.UUID, doorNumber string) (*models.Door, error) {
	query := `
		SELECT ` + doorColumns + `
		FROM doors d
		WHERE d.warehouse_id = $1 AND d.door_number = $2
	`
	return scanDoor(r.db.QueryRow(ctx, query, warehouseID, doorNumber))
}

func (r *doorRepo) Update(ctx context.Context, tenantID uuid.UUID, door *models.Door) error {
	query := `
		UPDATE doors d
		SET door_number = $1, door_type = $2, width_cm = $3, height_cm = $4, equipment = $5, is_active = $6, updated_at = NOW()
		FROM warehouses w
		WHERE w.id = d.warehouse_id AND w.tenant_id = $7 AND d.id = $8
	`
	_, err := r.db.Exec(ctx, query, door.DoorNumber, door.DoorType, door.WidthCM, door.HeightCM, door.Equipment, door.IsActive, tenantID, door.ID)
	return err
}

func (r *doorRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		DELETE FROM doors d
		USING warehouses w
		WHERE w.id = d.warehouse_id AND w.tenant_id = $1 AND d.id = $2
	`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *doorRepo) List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Door, error) {
	query := `
		SELECT ` + doorColumns + `
		FROM doors d
		JOIN warehouses w ON w.id = d.warehouse_id
		WHERE w.tenant_id = $1
		  AND ($2::uuid IS NULL OR d.warehouse_id = $2)
		ORDER BY d.created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doors []*models.Door
	for rows.Next() {
		d, err := scanDoor(rows)
		if err != nil {
			return nil, err
		}
		doors = append(doors, d)
	}
	return doors, rows.Err()
}

func (r *doorRepo) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM doors WHERE warehouse_id = $1`
	err := r.db.QueryRow(ctx, query, warehouseID).Scan(&count)
	return count, err
}

func (r *doorRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.DoorStats, error) {
	stats := &models.DoorStats{ByType: make(map[string]int)}
	query := `
		SELECT d.door_type, COUNT(*), COUNT(*) FILTER (WHERE d.is_active)
		FROM doors d
		JOIN warehouses w ON w.id = d.warehouse_id
		WHERE w.tenant_id = $1
		GROUP BY d.door_type
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var doorType string
		var total, active int
		if err := rows.Scan(&doorType, &total, &active); err != nil {
			return nil, err
		}
		stats.ByType[doorType] = total
		stats.Total += total
		stats.Active += active
	}
	return stats, rows.Err()
}
