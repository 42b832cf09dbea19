package services

import (
	"context"

	"github.com/google/uuid"

	"stockyard/internal/common"
	"stockyard/internal/models"
	"stockyard/internal/repositories"
)

type UOMService interface {
	Create(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.UOM, error)
	Update(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, itemID *uuid.UUID, limit, offset int) ([]*models.UOM, error)
}

type uomService struct {
	uoms  repositories.UOMRepository
	items repositories.ItemRepository
}

func NewUOMService(uoms repositories.UOMRepository, items repositories.ItemRepository) UOMService {
	return &uomService{uoms: uoms, items: items}
}

func (s *uomService) validate(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error {
	if err := common.RequireString(uom.UOMCode, "uom_code"); err != nil {
		return err
	}
	if err := common.RequireString(uom.Name, "name"); err != nil {
		return err
	}
	if uom.ConversionFactor <= 0 {
		return common.NewValidationError("conversion_factor must be > 0")
	}

	if _, err := s.items.GetByID(ctx, tenantID, uom.ItemID); err != nil {
		return common.NewValidationError("item_id does not reference an item of this tenant")
	}

	// A base unit must be another unit of the same item.
	if uom.BaseUOMID != nil {
		if *uom.BaseUOMID == uom.ID {
			return common.NewValidationError("base_uom_id must not reference the unit itself")
		}
		base, err := s.uoms.GetByID(ctx, tenantID, *uom.BaseUOMID)
		if err != nil {
			return common.NewValidationError("base_uom_id does not reference a unit of this tenant")
		}
		if base.ItemID != uom.ItemID {
			return common.NewValidationError("base_uom_id belongs to a different item")
		}
	}
	return nil
}

func (s *uomService) Create(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error {
	if err := s.validate(ctx, tenantID, uom); err != nil {
		return err
	}

	if existing, err := s.uoms.GetByCode(ctx, uom.ItemID, uom.UOMCode); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "uom_code already exists for this item"}
	}

	uom.ID = uuid.New()
	return common.TranslateDBError(s.uoms.Create(ctx, uom), "uom")
}

func (s *uomService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.UOM, error) {
	uom, err := s.uoms.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "uom")
	}
	return uom, nil
}

func (s *uomService) Update(ctx context.Context, tenantID uuid.UUID, uom *models.UOM) error {
	if _, err := s.uoms.GetByID(ctx, tenantID, uom.ID); err != nil {
		return common.TranslateDBError(err, "uom")
	}
	if err := s.validate(ctx, tenantID, uom); err != nil {
		return err
	}

	if existing, err := s.uoms.GetByCode(ctx, uom.ItemID, uom.UOMCode); err == nil && existing.ID != uom.ID {
		return &common.DuplicateError{Msg: "uom_code already exists for this item"}
	}

	return common.TranslateDBError(s.uoms.Update(ctx, tenantID, uom), "uom")
}

func (s *uomService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.uoms.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "uom")
	}
	return s.uoms.Delete(ctx, tenantID, id)
}

func (s *uomService) List(ctx context.Context, tenantID uuid.UUID, itemID *uuid.UUID, limit, offset int) ([]*models.UOM, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.uoms.List(ctx, tenantID, itemID, limit, offset)
}
