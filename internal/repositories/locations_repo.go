package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	// GetByID traverses the full parent chain (location -> warehouse ->
	// tenant); filtering only on the immediate parent is not enough.
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Location, error)
	GetByCode(ctx context.Context, warehouseID uuid.UUID, code string) (*models.Location, error)
	GetByBarcode(ctx context.Context, barcode string) (*models.Location, error)
	GetByQRCode(ctx context.Context, qrCode string) (*models.Location, error)
	Update(ctx context.Context, tenantID uuid.UUID, location *models.Location) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, warehouseID, zoneID *uuid.UUID, limit, offset int) ([]*models.Location, error)
	CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error)
	CountByZone(ctx context.Context, zoneID uuid.UUID) (int, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.LocationStats, error)
}

type locationRepo struct {
	db Database
}

func NewLocationRepository(db Database) LocationRepository {
	return &locationRepo{db: db}
}

const locationColumns = `l.id, l.warehouse_id, l.zone_id, l.location_code, l.location_type, l.barcode, l.qr_code, l.aisle, l.rack, l.shelf, l.capacity, l.weight_limit, l.is_active, l.created_at, l.updated_at`

func scanLocation(row interface{ Scan(dest ...any) error }) (*models.Location, error) {
	l := &models.Location{}
	err := row.Scan(&l.ID, &l.WarehouseID, &l.ZoneID, &l.LocationCode, &l.LocationType, &l.Barcode, &l.QRCode, &l.Aisle, &l.Rack, &l.Shelf, &l.Capacity, &l.WeightLimit, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *locationRepo) Create(ctx context.Context, location *models.Location) error {
	query := `
		INSERT INTO locations (id, warehouse_id, zone_id, location_code, location_type, barcode, qr_code, aisle, rack, shelf, capacity, weight_limit, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, location.ID, location.WarehouseID, location.ZoneID, location.LocationCode, location.LocationType, location.Barcode, location.QRCode, location.Aisle, location.Rack, location.Shelf, location.Capacity, location.WeightLimit, location.IsActive)
	return err
}

func (r *locationRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations l
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE w.tenant_id = $1 AND l.id = $2
	`
	return scanLocation(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *locationRepo) GetByCode(ctx context.Context, warehouseID uuid.UUID, code string) (*models.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations l
		WHERE l.warehouse_id = $1 AND l.location_code = $2
	`
	return scanLocation(r.db.QueryRow(ctx, query, warehouseID, code))
}

func (r *locationRepo) GetByBarcode(ctx context.Context, barcode string) (*models.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations l
		WHERE l.barcode = $1
	`
	return scanLocation(r.db.QueryRow(ctx, query, barcode))
}

func (r *locationRepo) GetByQRCode(ctx context.Context, qrCode string) (*models.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations l
		WHERE l.qr_code = $1
	`
	return scanLocation(r.db.QueryRow(ctx, query, qrCode))
}

func (r *locationRepo) Update(ctx context.Context, tenantID uuid.UUID, location *models.Location) error {
	query := `
		UPDATE locations l
		SET zone_id = $1, location_code = $2, location_type = $3, barcode = $4, qr_code = $5, aisle = $6, rack = $7, shelf = $8, capacity = $9, weight_limit = $10, is_active = $11, updated_at = NOW()
		FROM warehouses w
		WHERE w.id = l.warehouse_id AND w.tenant_id = $12 AND l.id = $13
	`
	_, err := r.db.Exec(ctx, query, location.ZoneID, location.LocationCode, location.LocationType, location.Barcode, location.QRCode, location.Aisle, location.Rack, location.Shelf, location.Capacity, location.WeightLimit, location.IsActive, tenantID, location.ID)
	return err
}

func (r *locationRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		DELETE FROM locations l
		USING warehouses w
		WHERE w.id = l.warehouse_id AND w.tenant_id = $1 AND l.id = $2
	`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *locationRepo) List(ctx context.Context, tenantID uuid.UUID, warehouseID, zoneID *uuid.UUID, limit, offset int) ([]*models.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations l
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE w.tenant_id = $1
		  AND ($2::uuid IS NULL OR l.warehouse_id = $2)
		  AND ($3::uuid IS NULL OR l.zone_id = $3)
		ORDER BY l.created_at DESC
		LIMIT $4 OFFSET $5
	`
	rows, err := r.db.Query(ctx, query, tenantID, warehouseID, zoneID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *locationRepo) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM locations WHERE warehouse_id = $1`
	err := r.db.QueryRow(ctx, query, warehouseID).Scan(&count)
	return count, err
}

func (r *locationRepo) CountByZone(ctx context.Context, zoneID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM locations WHERE zone_id = $1`
	err := r.db.QueryRow(ctx, query, zoneID).Scan(&count)
	return count, err
}

func (r *locationRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.LocationStats, error) {
	stats := &models.LocationStats{ByType: make(map[string]int)}
	query := `
		SELECT l.location_type, COUNT(*), COUNT(*) FILTER (WHERE l.is_active)
		FROM locations l
		JOIN warehouses w ON w.id = l.warehouse_id
		WHERE w.tenant_id = $1
		GROUP BY l.location_type
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var locationType string
		var total, active int
		if err := rows.Scan(&locationType, &total, &active); err != nil {
			return nil, err
		}
		stats.ByType[locationType] = total
		stats.Total += total
		stats.Active += active
	}
	return stats, rows.Err()
}
