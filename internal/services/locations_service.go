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

const locationStatsResource = "locations"

type LocationService interface {
	Create(ctx context.Context, tenantID uuid.UUID, location *models.Location) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Location, error)
	Update(ctx context.Context, tenantID uuid.UUID, location *models.Location) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, warehouseID, zoneID *uuid.UUID, limit, offset int) ([]*models.Location, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.LocationStats, error)
}

type locationService struct {
	locations  repositories.LocationRepository
	warehouses repositories.WarehouseRepository
	zones      repositories.ZoneRepository
	cache      caching.CacheService
}

func NewLocationService(
	locations repositories.LocationRepository,
	warehouses repositories.WarehouseRepository,
	zones repositories.ZoneRepository,
	cache caching.CacheService,
) LocationService {
	return &locationService{
		locations:  locations,
		warehouses: warehouses,
		zones:      zones,
		cache:      cache,
	}
}

func (s *locationService) validate(ctx context.Context, tenantID uuid.UUID, location *models.Location) error {
	if err := common.RequireString(location.LocationCode, "location_code"); err != nil {
		return err
	}
	if err := common.ValidateEnum(location.LocationType, "location_type", models.LocationTypes...); err != nil {
		return err
	}
	if location.Capacity != nil {
		if err := common.ValidateNonNegative(*location.Capacity, "capacity"); err != nil {
			return err
		}
	}
	if location.WeightLimit != nil {
		if err := common.ValidateNonNegative(*location.WeightLimit, "weight_limit"); err != nil {
			return err
		}
	}

	if _, err := s.warehouses.GetByID(ctx, tenantID, location.WarehouseID); err != nil {
		return common.NewValidationError("warehouse_id does not reference a warehouse of this tenant")
	}

	// A zone, when given, must be owned by the tenant and sit in the same
	// warehouse as the location.
	if location.ZoneID != nil {
		zone, err := s.zones.GetByID(ctx, tenantID, *location.ZoneID)
		if err != nil {
			return common.NewValidationError("zone_id does not reference a zone of this tenant")
		}
		if zone.WarehouseID != location.WarehouseID {
			return common.NewValidationError("zone_id belongs to a different warehouse")
		}
	}
	return nil
}

// checkIdentifiers enforces the globally unique barcode/qr_code rule;
// scanner identifiers must resolve to exactly one location regardless of
// tenant.
func (s *locationService) checkIdentifiers(ctx context.Context, location *models.Location) error {
	if location.Barcode != nil && *location.Barcode != "" {
		if existing, err := s.locations.GetByBarcode(ctx, *location.Barcode); err == nil && existing.ID != location.ID {
			return &common.DuplicateError{Msg: "barcode already assigned to another location"}
		}
	}
	if location.QRCode != nil && *location.QRCode != "" {
		if existing, err := s.locations.GetByQRCode(ctx, *location.QRCode); err == nil && existing.ID != location.ID {
			return &common.DuplicateError{Msg: "qr_code already assigned to another location"}
		}
	}
	return nil
}

func (s *locationService) Create(ctx context.Context, tenantID uuid.UUID, location *models.Location) error {
	if err := s.validate(ctx, tenantID, location); err != nil {
		return err
	}

	if existing, err := s.locations.GetByCode(ctx, location.WarehouseID, location.LocationCode); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "location_code already exists in this warehouse"}
	}
	if err := s.checkIdentifiers(ctx, location); err != nil {
		return err
	}

	location.ID = uuid.New()
	if err := common.TranslateDBError(s.locations.Create(ctx, location), "location"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *locationService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Location, error) {
	location, err := s.locations.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "location")
	}
	return location, nil
}

func (s *locationService) Update(ctx context.Context, tenantID uuid.UUID, location *models.Location) error {
	if _, err := s.locations.GetByID(ctx, tenantID, location.ID); err != nil {
		return common.TranslateDBError(err, "location")
	}
	if err := s.validate(ctx, tenantID, location); err != nil {
		return err
	}

	if existing, err := s.locations.GetByCode(ctx, location.WarehouseID, location.LocationCode); err == nil && existing.ID != location.ID {
		return &common.DuplicateError{Msg: "location_code already exists in this warehouse"}
	}
	if err := s.checkIdentifiers(ctx, location); err != nil {
		return err
	}

	if err := common.TranslateDBError(s.locations.Update(ctx, tenantID, location), "location"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *locationService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.locations.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "location")
	}

	if err := s.locations.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *locationService) List(ctx context.Context, tenantID uuid.UUID, warehouseID, zoneID *uuid.UUID, limit, offset int) ([]*models.Location, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.locations.List(ctx, tenantID, warehouseID, zoneID, limit, offset)
}

func (s *locationService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.LocationStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, locationStatsResource, func() (*models.LocationStats, error) {
		return s.locations.Stats(ctx, tenantID)
	})
}

func (s *locationService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, locationStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", locationStatsResource).Msg("stats cache invalidation failed")
	}
}
