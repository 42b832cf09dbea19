package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stockyard/internal/caching"
	"stockyard/internal/common"
	"stockyard/internal/models"
	"stockyard/internal/repositories"
)

const doorStatsResource = "doors"

type DoorService interface {
	Create(ctx context.Context, tenantID uuid.UUID, door *models.Door) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Door, error)
	Update(ctx context.Context, tenantID uuid.UUID, door *models.Door) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Door, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.DoorStats, error)
}

type doorService struct {
	doors      repositories.DoorRepository
	warehouses repositories.WarehouseRepository
	cache      caching.CacheService
}

func NewDoorService(
	doors repositories.DoorRepository,
	warehouses repositories.WarehouseRepository,
	cache caching.CacheService,
) DoorService {
	return &doorService{doors: doors, warehouses: warehouses, cache: cache}
}

func (s *doorService) validate(ctx context.Context, tenantID uuid.UUID, door *models.Door) error {
	if err := common.RequireString(door.DoorNumber, "door_number"); err != nil {
		return err
	}
	if err := common.ValidateEnum(door.DoorType, "door_type", models.DoorTypes...); err != nil {
		return err
	}
	if door.WidthCM != nil {
		if err := common.ValidateNonNegative(*door.WidthCM, "width_cm"); err != nil {
			return err
		}
	}
	if door.HeightCM != nil {
		if err := common.ValidateNonNegative(*door.HeightCM, "height_cm"); err != nil {
			return err
		}
	}
	if len(door.Equipment) > 0 && !json.Valid(door.Equipment) {
		return common.NewValidationError("equipment must be valid JSON")
	}

	if _, err := s.warehouses.GetByID(ctx, tenantID, door.WarehouseID); err != nil {
		return common.NewValidationError("warehouse_id does not reference a warehouse of this tenant")
	}
	return nil
}

func (s *doorService) Create(ctx context.Context, tenantID uuid.UUID, door *models.Door) error {
	if err := s.validate(ctx, tenantID, door); err != nil {
		return err
	}

	if existing, err := s.doors.GetByNumber(ctx, door.WarehouseID, door.DoorNumber); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "door_number already exists in this warehouse"}
	}

	door.ID = uuid.New()
	if err := common.TranslateDBError(s.doors.Create(ctx, door), "door"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *doorService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Door, error) {
	door, err := s.doors.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "door")
	}
	return door, nil
}

func (s *doorService) Update(ctx context.Context, tenantID uuid.UUID, door *models.Door) error {
	if _, err := s.doors.GetByID(ctx, tenantID, door.ID); err != nil {
		return common.TranslateDBError(err, "door")
	}
	if err := s.validate(ctx, tenantID, door); err != nil {
		return err
	}

	if existing, err := s.doors.GetByNumber(ctx, door.WarehouseID, door.DoorNumber); err == nil && existing.ID != door.ID {
		return &common.DuplicateError{Msg: "door_number already exists in this warehouse"}
	}

	if err := common.TranslateDBError(s.doors.Update(ctx, tenantID, door), "door"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *doorService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.doors.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "door")
	}

	if err := s.doors.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *doorService) List(ctx context.Context, tenantID uuid.UUID, warehouseID *uuid.UUID, limit, offset int) ([]*models.Door, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.doors.List(ctx, tenantID, warehouseID, limit, offset)
}

func (s *doorService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.DoorStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, doorStatsResource, func() (*models.DoorStats, error) {
		return s.doors.Stats(ctx, tenantID)
	})
}

func (s *doorService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, doorStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", doorStatsResource).Msg("stats cache invalidation failed")
	}
}
