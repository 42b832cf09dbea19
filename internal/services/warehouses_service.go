package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stockyard/internal/caching"
	"stockyard/internal/common"
	"stockyard/internal/config"
	"stockyard/internal/models"
	"stockyard/internal/repositories"
)

const warehouseStatsResource = "warehouses"

type WarehouseService interface {
	Create(ctx context.Context, tenantID uuid.UUID, warehouse *models.Warehouse) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Warehouse, error)
	Update(ctx context.Context, tenantID uuid.UUID, warehouse *models.Warehouse) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Warehouse, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.WarehouseStats, error)
}

type warehouseService struct {
	warehouses repositories.WarehouseRepository
	zones      repositories.ZoneRepository
	locations  repositories.LocationRepository
	doors      repositories.DoorRepository
	cache      caching.CacheService
}

func NewWarehouseService(
	warehouses repositories.WarehouseRepository,
	zones repositories.ZoneRepository,
	locations repositories.LocationRepository,
	doors repositories.DoorRepository,
	cache caching.CacheService,
) WarehouseService {
	return &warehouseService{
		warehouses: warehouses,
		zones:      zones,
		locations:  locations,
		doors:      doors,
		cache:      cache,
	}
}

func (s *warehouseService) validate(warehouse *models.Warehouse) error {
	if err := common.RequireString(warehouse.WarehouseCode, "warehouse_code"); err != nil {
		return err
	}
	if err := common.RequireString(warehouse.Name, "name"); err != nil {
		return err
	}
	if warehouse.TotalCapacity != nil {
		if err := common.ValidateNonNegative(*warehouse.TotalCapacity, "total_capacity"); err != nil {
			return err
		}
	}
	return nil
}

func (s *warehouseService) Create(ctx context.Context, tenantID uuid.UUID, warehouse *models.Warehouse) error {
	if err := s.validate(warehouse); err != nil {
		return err
	}

	// Pre-flight only; the unique index is the authoritative guard and
	// TranslateDBError catches the race.
	if existing, err := s.warehouses.GetByCode(ctx, tenantID, warehouse.WarehouseCode); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "warehouse_code already exists for this tenant"}
	}

	warehouse.ID = uuid.New()
	warehouse.TenantID = tenantID
	if err := common.TranslateDBError(s.warehouses.Create(ctx, warehouse), "warehouse"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *warehouseService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Warehouse, error) {
	warehouse, err := s.warehouses.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "warehouse")
	}
	return warehouse, nil
}

func (s *warehouseService) Update(ctx context.Context, tenantID uuid.UUID, warehouse *models.Warehouse) error {
	if err := s.validate(warehouse); err != nil {
		return err
	}

	if _, err := s.warehouses.GetByID(ctx, tenantID, warehouse.ID); err != nil {
		return common.TranslateDBError(err, "warehouse")
	}

	// The duplicate check always runs, excluding the row itself, so an
	// update that keeps its own code passes and one that takes another
	// row's code fails.
	if existing, err := s.warehouses.GetByCode(ctx, tenantID, warehouse.WarehouseCode); err == nil && existing.ID != warehouse.ID {
		return &common.DuplicateError{Msg: "warehouse_code already exists for this tenant"}
	}

	warehouse.TenantID = tenantID
	if err := common.TranslateDBError(s.warehouses.Update(ctx, warehouse), "warehouse"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *warehouseService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.warehouses.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "warehouse")
	}

	if count, err := s.zones.CountByWarehouse(ctx, id); err != nil {
		return err
	} else if count > 0 {
		return &common.DependencyError{Resource: "warehouse", Dependent: "zones", Count: count}
	}
	if count, err := s.locations.CountByWarehouse(ctx, id); err != nil {
		return err
	} else if count > 0 {
		return &common.DependencyError{Resource: "warehouse", Dependent: "locations", Count: count}
	}
	if count, err := s.doors.CountByWarehouse(ctx, id); err != nil {
		return err
	} else if count > 0 {
		return &common.DependencyError{Resource: "warehouse", Dependent: "doors", Count: count}
	}

	if err := s.warehouses.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *warehouseService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Warehouse, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.warehouses.List(ctx, tenantID, limit, offset)
}

func (s *warehouseService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.WarehouseStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, warehouseStatsResource, func() (*models.WarehouseStats, error) {
		return s.warehouses.Stats(ctx, tenantID)
	})
}

func (s *warehouseService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, warehouseStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", warehouseStatsResource).Msg("stats cache invalidation failed")
	}
}

// statsThroughCache serves aggregates from Redis when present, otherwise
// computes them in SQL and caches the result. Cache failures degrade to
// the database, they never fail the request.
func statsThroughCache[T any](ctx context.Context, cache caching.CacheService, tenantID uuid.UUID, resource string, compute func() (*T, error)) (*T, error) {
	var cached T
	if err := cache.GetStats(ctx, tenantID, resource, &cached); err == nil {
		return &cached, nil
	}

	stats, err := compute()
	if err != nil {
		return nil, err
	}
	if err := cache.SetStats(ctx, tenantID, resource, stats, config.StatsCacheTTL); err != nil {
		log.Warn().Err(err).Str("resource", resource).Msg("stats cache write failed")
	}
	return stats, nil
}
