package repositories

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/models"
)

type ZoneRepository interface {
	Create(ctx context.Context, zone *models.Zone) error
	// GetByID resolves the zone through its warehouse so rows outside the
	// caller's tenant are never returned.
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Zone, error)
	GetByCode(ctx context.Context, warehouseID uuid.UUID, code string) (*models.Zone, error)
	Update(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Zone, error)
	CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.ZoneStats, error)
}

type zoneRepo struct {
	db Database
}

func NewZoneRepository(db Database) ZoneRepository {
	return &zoneRepo{db: db}
}

const zoneColumns = `z.id, z.warehouse_id, z.zone_code, z.name, z.description, z.temperature_controlled, z.min_temperature, z.max_temperature, z.humidity_controlled, z.min_humidity, z.max_humidity, z.is_active, z.created_at, z.updated_at`

func scanZone(row interface{ Scan(dest ...any) error }) (*models.Zone, error) {
	z := &models.Zone{}
	err := row.Scan(&z.ID, &z.WarehouseID, &z.ZoneCode, &z.Name, &z.Description, &z.TemperatureControlled, &z.MinTemperature, &z.MaxTemperature, &z.HumidityControlled, &z.MinHumidity, &z.MaxHumidity, &z.IsActive, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return z, nil
}

func (r *zoneRepo) Create(ctx context.Context, zone *models.Zone) error {
	query := `
		INSERT INTO zones (id, warehouse_id, zone_code, name, description, temperature_controlled, min_temperature, max_temperature, humidity_controlled, min_humidity, max_humidity, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, zone.ID, zone.WarehouseID, zone.ZoneCode, zone.Name, zone.Description, zone.TemperatureControlled, zone.MinTemperature, zone.MaxTemperature, zone.HumidityControlled, zone.MinHumidity, zone.MaxHumidity, zone.IsActive)
	return err
}

func (r *zoneRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Zone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM zones z
		JOIN warehouses w ON w.id = z.warehouse_id
		WHERE w.tenant_id = $1 AND z.id = $2
	`
	return scanZone(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *zoneRepo) GetByCode(ctx context.Context, warehouseID uuid.UUID, code string) (*models.Zone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM zones z
		WHERE z.warehouse_id = $1 AND z.zone_code = $2
	`
	return scanZone(r.db.QueryRow(ctx, query, warehouseID, code))
}

func (r *zoneRepo) Update(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error {
	query := `
		UPDATE zones z
		SET zone_code = $1, name = $2, description = $3, temperature_controlled = $4, min_temperature = $5, max_temperature = $6, humidity_controlled = $7, min_humidity = $8, max_humidity = $9, is_active = $10, updated_at = NOW()
		FROM warehouses w
		WHERE w.id = z.warehouse_id AND w.tenant_id = $11 AND z.id = $12
	`
	_, err := r.db.Exec(ctx, query, zone.ZoneCode, zone.Name, zone.Description, zone.TemperatureControlled, zone.MinTemperature, zone.MaxTemperature, zone.HumidityControlled, zone.MinHumidity, zone.MaxHumidity, zone.IsActive, tenantID, zone.ID)
	return err
}

func (r *zoneRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		DELETE FROM zones z
		USING warehouses w
		WHERE w.id = z.warehouse_id AND w.tenant_id = $1 AND z.id = $2
	`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *zoneRepo) List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Zone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM zones z
		JOIN warehouses w ON w.id = z.warehouse_id
		WHERE w.tenant_id = $1
		  AND ($2::uuid IS NULL OR z.warehouse_id = $2)
		ORDER BY z.created_at DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, tenantID, warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zones []*models.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (r *zoneRepo) CountByWarehouse(ctx context.Context, warehouseID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM zones WHERE warehouse_id = $1`
	err := r.db.QueryRow(ctx, query, warehouseID).Scan(&count)
	return count, err
}

func (r *zoneRepo) Stats(ctx context.Context, tenantID uuid.UUID) (*models.ZoneStats, error) {
	stats := &models.ZoneStats{}
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE z.is_active),
		       COUNT(*) FILTER (WHERE z.temperature_controlled),
		       COUNT(*) FILTER (WHERE z.humidity_controlled)
		FROM zones z
		JOIN warehouses w ON w.id = z.warehouse_id
		WHERE w.tenant_id = $1
	`
	err := r.db.QueryRow(ctx, query, tenantID).Scan(&stats.Total, &stats.Active, &stats.TemperatureControlled, &stats.HumidityControlled)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
