package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"stockyard/internal/common"
	"stockyard/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	users    *MockUserRepository
	cache    *MockCacheService
	service  UserService
	ctx      context.Context
	tenantID uuid.UUID
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.users = new(MockUserRepository)
	suite.cache = new(MockCacheService)
	suite.users.Test(suite.T())
	suite.cache.Test(suite.T())
	suite.service = NewUserService(suite.users, suite.cache)
	suite.ctx = context.Background()
	suite.tenantID = uuid.New()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.users.AssertExpectations(suite.T())
	suite.cache.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateSuccess() {
	user := &models.User{
		AuthID:    "sub-123",
		Email:     "ops@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Role:      models.RoleOperator,
	}

	suite.users.On("GetByEmail", suite.ctx, suite.tenantID, "ops@example.com").Return(nil, pgx.ErrNoRows)
	suite.users.On("Create", suite.ctx, user).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "users").Return(nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, user)

	suite.NoError(err)
	suite.Equal(suite.tenantID, user.TenantID)
}

func (suite *UserServiceTestSuite) TestCreateAcceptsDisplayRole() {
	user := &models.User{
		AuthID:    "sub-123",
		Email:     "ops@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Role:      "Administrator",
	}

	suite.users.On("GetByEmail", suite.ctx, suite.tenantID, "ops@example.com").Return(nil, pgx.ErrNoRows)
	suite.users.On("Create", suite.ctx, user).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "users").Return(nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, user)

	suite.NoError(err)
	suite.Equal(models.RoleAdmin, user.Role)
}

func (suite *UserServiceTestSuite) TestCreateUnknownRole() {
	user := &models.User{
		AuthID:    "sub-123",
		Email:     "ops@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Role:      "superuser",
	}

	err := suite.service.Create(suite.ctx, suite.tenantID, user)

	var valErr *common.ValidationError
	suite.ErrorAs(err, &valErr)
	suite.users.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateRequiresAuthID() {
	user := &models.User{
		Email:     "ops@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Role:      models.RoleViewer,
	}

	var valErr *common.ValidationError
	suite.ErrorAs(suite.service.Create(suite.ctx, suite.tenantID, user), &valErr)
}

func (suite *UserServiceTestSuite) TestUpdatePreservesProviderLink() {
	id := uuid.New()
	user := &models.User{
		ID:        id,
		AuthID:    "sub-forged",
		Email:     "ops@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Role:      models.RoleManager,
	}

	suite.users.On("GetByID", suite.ctx, suite.tenantID, id).
		Return(&models.User{ID: id, AuthID: "sub-original"}, nil)
	suite.users.On("GetByEmail", suite.ctx, suite.tenantID, "ops@example.com").
		Return(&models.User{ID: id}, nil)
	suite.users.On("Update", suite.ctx, user).Return(nil)
	suite.cache.On("InvalidateStats", suite.ctx, suite.tenantID, "users").Return(nil)

	err := suite.service.Update(suite.ctx, suite.tenantID, user)

	suite.NoError(err)
	suite.Equal("sub-original", user.AuthID)
}

func (suite *UserServiceTestSuite) TestUpdateDuplicateEmail() {
	id := uuid.New()
	user := &models.User{
		ID:        id,
		Email:     "taken@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
		Role:      models.RoleManager,
	}

	suite.users.On("GetByID", suite.ctx, suite.tenantID, id).
		Return(&models.User{ID: id, AuthID: "sub-original"}, nil)
	suite.users.On("GetByEmail", suite.ctx, suite.tenantID, "taken@example.com").
		Return(&models.User{ID: uuid.New()}, nil)

	var dupErr *common.DuplicateError
	suite.ErrorAs(suite.service.Update(suite.ctx, suite.tenantID, user), &dupErr)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
