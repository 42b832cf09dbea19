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

const itemStatsResource = "items"

type ItemService interface {
	Create(ctx context.Context, tenantID uuid.UUID, item *models.Item) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Item, error)
	Update(ctx context.Context, tenantID uuid.UUID, item *models.Item) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Item, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.ItemStats, error)
}

type itemService struct {
	items     repositories.ItemRepository
	customers repositories.CustomerRepository
	uoms      repositories.UOMRepository
	cache     caching.CacheService
}

func NewItemService(
	items repositories.ItemRepository,
	customers repositories.CustomerRepository,
	uoms repositories.UOMRepository,
	cache caching.CacheService,
) ItemService {
	return &itemService{
		items:     items,
		customers: customers,
		uoms:      uoms,
		cache:     cache,
	}
}

func (s *itemService) validate(ctx context.Context, tenantID uuid.UUID, item *models.Item) error {
	if err := common.RequireString(item.ItemCode, "item_code"); err != nil {
		return err
	}
	if err := common.RequireString(item.Name, "name"); err != nil {
		return err
	}

	for name, value := range map[string]*float64{
		"unit_cost":        item.UnitCost,
		"unit_price":       item.UnitPrice,
		"weight_kg":        item.WeightKG,
		"length_cm":        item.LengthCM,
		"width_cm":         item.WidthCM,
		"height_cm":        item.HeightCM,
		"reorder_point":    item.ReorderPoint,
		"reorder_quantity": item.ReorderQuantity,
	} {
		if value == nil {
			continue
		}
		if err := common.ValidateNonNegative(*value, name); err != nil {
			return err
		}
	}

	if _, err := s.customers.GetByID(ctx, tenantID, item.CustomerID); err != nil {
		return common.NewValidationError("customer_id does not reference a customer of this tenant")
	}
	return nil
}

func (s *itemService) Create(ctx context.Context, tenantID uuid.UUID, item *models.Item) error {
	if err := s.validate(ctx, tenantID, item); err != nil {
		return err
	}

	if existing, err := s.items.GetByCode(ctx, item.CustomerID, item.ItemCode); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "item_code already exists for this customer"}
	}

	item.ID = uuid.New()
	if err := common.TranslateDBError(s.items.Create(ctx, item), "item"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *itemService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Item, error) {
	item, err := s.items.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "item")
	}
	return item, nil
}

func (s *itemService) Update(ctx context.Context, tenantID uuid.UUID, item *models.Item) error {
	if _, err := s.items.GetByID(ctx, tenantID, item.ID); err != nil {
		return common.TranslateDBError(err, "item")
	}
	if err := s.validate(ctx, tenantID, item); err != nil {
		return err
	}

	if existing, err := s.items.GetByCode(ctx, item.CustomerID, item.ItemCode); err == nil && existing.ID != item.ID {
		return &common.DuplicateError{Msg: "item_code already exists for this customer"}
	}

	if err := common.TranslateDBError(s.items.Update(ctx, tenantID, item), "item"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *itemService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.items.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "item")
	}

	if count, err := s.uoms.CountByItem(ctx, id); err != nil {
		return err
	} else if count > 0 {
		return &common.DependencyError{Resource: "item", Dependent: "uoms", Count: count}
	}

	if err := s.items.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *itemService) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Item, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.items.List(ctx, tenantID, customerID, limit, offset)
}

func (s *itemService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.ItemStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, itemStatsResource, func() (*models.ItemStats, error) {
		return s.items.Stats(ctx, tenantID)
	})
}

func (s *itemService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, itemStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", itemStatsResource).Msg("stats cache invalidation failed")
	}
}
