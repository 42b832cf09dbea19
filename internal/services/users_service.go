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

const userStatsResource = "users"

type UserService interface {
	Create(ctx context.Context, tenantID uuid.UUID, user *models.User) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, tenantID uuid.UUID, user *models.User) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.User, error)
	Stats(ctx context.Context, tenantID uuid.UUID) (*models.UserStats, error)
}

type userService struct {
	users repositories.UserRepository
	cache caching.CacheService
}

func NewUserService(users repositories.UserRepository, cache caching.CacheService) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) validate(user *models.User) error {
	if err := common.RequireString(user.Email, "email"); err != nil {
		return err
	}
	if !strings.Contains(user.Email, "@") {
		return common.NewValidationError("email is not a valid address")
	}
	if err := common.RequireString(user.FirstName, "first_name"); err != nil {
		return err
	}
	if err := common.RequireString(user.LastName, "last_name"); err != nil {
		return err
	}
	// Accept both internal and display role values from clients.
	user.Role = models.InternalRole(user.Role)
	return common.ValidateEnum(user.Role, "role", models.Roles...)
}

func (s *userService) Create(ctx context.Context, tenantID uuid.UUID, user *models.User) error {
	if err := s.validate(user); err != nil {
		return err
	}
	if err := common.RequireString(user.AuthID, "auth_id"); err != nil {
		return err
	}

	if existing, err := s.users.GetByEmail(ctx, tenantID, user.Email); err == nil && existing != nil {
		return &common.DuplicateError{Msg: "email already exists for this tenant"}
	}

	user.ID = uuid.New()
	user.TenantID = tenantID
	if err := common.TranslateDBError(s.users.Create(ctx, user), "user"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *userService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, common.TranslateDBError(err, "user")
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, tenantID uuid.UUID, user *models.User) error {
	current, err := s.users.GetByID(ctx, tenantID, user.ID)
	if err != nil {
		return common.TranslateDBError(err, "user")
	}
	if err := s.validate(user); err != nil {
		return err
	}

	if existing, err := s.users.GetByEmail(ctx, tenantID, user.Email); err == nil && existing.ID != user.ID {
		return &common.DuplicateError{Msg: "email already exists for this tenant"}
	}

	// The provider link is immutable; re-pointing a local user at another
	// external subject would silently reassign their history.
	user.AuthID = current.AuthID
	user.TenantID = tenantID
	if err := common.TranslateDBError(s.users.Update(ctx, user), "user"); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *userService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, tenantID, id); err != nil {
		return common.TranslateDBError(err, "user")
	}

	if err := s.users.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	s.invalidateStats(ctx, tenantID)
	return nil
}

func (s *userService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.User, error) {
	limit, offset = common.NormalizePagination(limit, offset)
	return s.users.List(ctx, tenantID, limit, offset)
}

func (s *userService) Stats(ctx context.Context, tenantID uuid.UUID) (*models.UserStats, error) {
	return statsThroughCache(ctx, s.cache, tenantID, userStatsResource, func() (*models.UserStats, error) {
		return s.users.Stats(ctx, tenantID)
	})
}

func (s *userService) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.InvalidateStats(ctx, tenantID, userStatsResource); err != nil {
		log.Warn().Err(err).Str("resource", userStatsResource).Msg("stats cache invalidation failed")
	}
}
