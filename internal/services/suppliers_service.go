package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"stockyard/internal/caching"
	"stockyard/internal/common"
	"stockyard/internal/models"
	"stockyard/internal/repositories"
)

const supplierStatsResource = "suppliers"

type SupplierService interface {
	Create(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Supplier, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.SupplierStats, error)
}

type supplierService struct {
	suppliers repositories.SupplierRepository
	customers repositories.CustomerRepository
	cache     caching.CacheService
}

func NewSupplierService(
	suppliers repositories.SupplierRepository,
	customers repositories.CustomerRepository,
	cache caching.CacheService,
) SupplierService {
	return &supplierService{
		suppliers: suppliers,
		customers: customers,
		cache:     cache,
	}
}

func (s *supplierService) validate(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error {
	if err := common.RequireString(supplier.Name, "name"); err != nil {
		return err
	}
	if err := common.RequireString(supplier.Email, "email"); err != nil {
		return err
	}
	if !strings.Contains(supplier.Email, "@") {
		return common.NewValidationError("email is not a valid address")
	}
	if _, err := s.customers.GetByID(ctx, tenantID, supplier.CustomerID); err != nil {
		return common.NewValidationError("customer_id does not reference a customer of this tenant")
	}
	return nil
}

func (s *supplierService) Create(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error {
	if err := s.validate(ctx, tenantID, supplier); err != nil {
		return err
	}

	if existing, err := s.suppliers.GetByEmail(ctx, tenantID, supplier.CustomerID, supplier.Email); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "email already exists for this customer"}
	}

	supplier.ID = uuid.New()
	supplier.TenantID = tenantID
	if err := common.TranslateDBError(s.suppliers.Create(ctx, supplier), "supplier"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *supplierService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "supplier")
	}
	return supplier, nil
}

func (s *supplierService) Update(ctx context.Context, tenantID uuid.UUID, supplier *models.Supplier) error {
	if _, err := s.suppliers.GetByID(ctx, tenantID, supplier.ID); err != nil {
		return common.TranslateDBError(err, "supplier")
	}
	if err := s.validate(ctx, tenantID, supplier); err != nil {
		return err
	}

	if existing, err := s.suppliers.GetByEmail(ctx, tenantID, supplier.CustomerID, supplier.Email); err == nil && existing.ID != supplier.ID {
		return &common.DuplicateError{Msg: "email already exists for this customer"}
	}

	supplier.TenantID = tenantID
	if err := common.TranslateDBError(s.suppliers.Update(ctx, supplier), "supplier"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *supplierService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.suppliers.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "supplier")
	}

	if err := s.suppliers.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *supplierService) List(ctx context.Context, tenantID uuid.UUID, customerID *uuid.UUID, limit, offset int) ([]*models.Supplier, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.suppliers.List(ctx, tenantID, customerID, limit, offset)
}

func (s *supplierService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.SupplierStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, supplierStatsResource, func() (*models.SupplierStats, error) {
		return s.suppliers.Stats(ctx, tenantID)
	})
}

func (s *supplierService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, supplierStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", supplierStatsResource).Msg("stats cache invalidation failed")
	}
}
