package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stockyard/internal/caching"
	"stockyard/internal/common"
	"stockyard/internal/models"
	"stockyard/internal/repositories"
)

const zoneStatsResource = "zones"

type ZoneService interface {
	Create(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Zone, error)
	Update(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Zone, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.ZoneStats, error)
}

type zoneService struct {
	zones      repositories.ZoneRepository
	warehouses repositories.WarehouseRepository
	locations  repositories.LocationRepository
	cache      caching.CacheService
}

func NewZoneService(
	zones repositories.ZoneRepository,
	warehouses repositories.WarehouseRepository,
	locations repositories.LocationRepository,
	cache caching.CacheService,
) ZoneService {
	return &zoneService{
		zones:      zones,
		warehouses: warehouses,
		locations:  locations,
		cache:      cache,
	}
}

func (s *zoneService) validate(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error {
	if err := common.RequireString(zone.ZoneCode, "zone_code"); err != nil {
		return err
	}
	if err := common.RequireString(zone.Name, "name"); err != nil {
		return err
	}
	if zone.TemperatureControlled && zone.MinTemperature != nil && zone.MaxTemperature != nil && *zone.MinTemperature > *zone.MaxTemperature {
		return common.NewValidationError("min_temperature must not exceed max_temperature")
	}
	if zone.HumidityControlled && zone.MinHumidity != nil && zone.MaxHumidity != nil && *zone.MinHumidity > *zone.MaxHumidity {
		return common.NewValidationError("min_humidity must not exceed max_humidity")
	}

	// The warehouse must belong to the caller's tenant; another tenant's
	// warehouse id is rejected as invalid input, not leaked as existing.
	if _, err := s.warehouses.GetByID(ctx, tenantID, zone.WarehouseID); err != nil {
		return common.NewValidationError("warehouse_id does not reference a warehouse of this tenant")
	}
	return nil
}

func (s *zoneService) Create(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error {
	if err := s.validate(ctx, tenantID, zone); err != nil {
		return err
	}

	if existing, err := s.zones.GetByCode(ctx, zone.WarehouseID, zone.ZoneCode); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "zone_code already exists in this warehouse"}
	}

	zone.ID = uuid.New()
	if err := common.TranslateDBError(s.zones.Create(ctx, zone), "zone"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *zoneService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Zone, error) {
	zone, err := s.zones.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "zone")
	}
	return zone, nil
}

func (s *zoneService) Update(ctx context.Context, tenantID uuid.UUID, zone *models.Zone) error {
	if _, err := s.zones.GetByID(ctx, tenantID, zone.ID); err != nil {
		return common.TranslateDBError(err, "zone")
	}
	if err := s.validate(ctx, tenantID, zone); err != nil {
		return err
	}

	if existing, err := s.zones.GetByCode(ctx, zone.WarehouseID, zone.ZoneCode); err == nil && existing.ID != zone.ID {
		return &common.DuplicateError{Msg: "zone_code already exists in this warehouse"}
	}

	if err := common.TranslateDBError(s.zones.Update(ctx, tenantID, zone), "zone"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *zoneService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.zones.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "zone")
	}

	if count, err := s.locations.CountByZone(ctx, id); err != nil {
		return err
	} else if count > 0 {
		return &common.DependencyError{Resource: "zone", Dependent: "locations", Count: count}
	}

	if err := s.zones.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *zoneService) List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Zone, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.zones.List(ctx, tenantID, warehouseID, limit, offset)
}

func (s *zoneService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.ZoneStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, zoneStatsResource, func() (*models.ZoneStats, error) {
		return s.zones.Stats(ctx, tenantID)
	})
}

func (s *zoneService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, zoneStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", zoneStatsResource).Msg("stats cache invalidation failed")
	}
}
