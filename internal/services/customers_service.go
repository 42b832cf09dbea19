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

const customerStatsResource = "customers"

type CustomerService interface {
	Create(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error)
	Update(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.CustomerStats, error)
}

type customerService struct {
	customers repositories.CustomerRepository
	suppliers repositories.SupplierRepository
	items     repositories.ItemRepository
	cache     caching.CacheService
}

func NewCustomerService(
	customers repositories.CustomerRepository,
	suppliers repositories.SupplierRepository,
	items repositories.ItemRepository,
	cache caching.CacheService,
) CustomerService {
	return &customerService{
		customers: customers,
		suppliers: suppliers,
		items:     items,
		cache:     cache,
	}
}

func (s *customerService) validate(customer *models.Customer) error {
	if err := common.RequireString(customer.CustomerCode, "customer_code"); err != nil {
		return err
	}
	return common.RequireString(customer.Name, "name")
}

func (s *customerService) Create(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error {
	if err := s.validate(customer); err != nil {
		return err
	}

	if existing, err := s.customers.GetByCode(ctx, tenantID, customer.CustomerCode); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "customer_code already exists for this tenant"}
	}

	customer.ID = uuid.New()
	customer.TenantID = tenantID
	if err := common.TranslateDBError(s.customers.Create(ctx, customer), "customer"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *customerService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "customer")
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, tenantID uuid.UUID, customer *models.Customer) error {
	if err := s.validate(customer); err != nil {
		return err
	}

	if _, err := s.customers.GetByID(ctx, tenantID, customer.ID); err != nil {
		return common.TranslateDBError(err, "customer")
	}

	if existing, err := s.customers.GetByCode(ctx, tenantID, customer.CustomerCode); err == nil && existing.ID != customer.ID {
		return &common.DuplicateError{Msg: "customer_code already exists for this tenant"}
	}

	customer.TenantID = tenantID
	if err := common.TranslateDBError(s.customers.Update(ctx, customer), "customer"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *customerService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.customers.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "customer")
	}

	if count, err := s.suppliers.CountByCustomer(ctx, id); err != nil {
		return err
	} else if count > 0 {
		return &common.DependencyError{Resource: "customer", Dependent: "suppliers", Count: count}
	}
	if count, err := s.items.CountByCustomer(ctx, id); err != nil {
		return err
	} else if count > 0 {
		return &common.DependencyError{Resource: "customer", Dependent: "items", Count: count}
	}

	if err := s.customers.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *customerService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Customer, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.customers.List(ctx, tenantID, limit, offset)
}

func (s *customerService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.CustomerStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, customerStatsResource, func() (*models.CustomerStats, error) {
		return s.customers.Stats(ctx, tenantID)
	})
}

func (s *customerService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, customerStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", customerStatsResource).Msg("stats cache invalidation failed")
	}
}
