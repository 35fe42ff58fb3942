package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/CellkomStore/cellkom_store_app/internal/apperrors"
	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	portssvc "github.com/CellkomStore/cellkom_store_app/internal/core/ports/services"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
	"github.com/CellkomStore/cellkom_store_app/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider string, providerID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsToKasirRole() {
	req := dto.CreateUserRequest{
		Username: "siti",
		Name:     "Siti",
		Password: "password123",
	}

	suite.mockRepo.On("FindUserByUsername", suite.ctx, "siti").
		Return(nil, fmt.Errorf("%w: user siti", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "siti" && u.Role == domain.RoleKasir && u.IsActive && u.PasswordHash != ""
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleKasir, user.Role)
	suite.Equal("admin-1", user.CreatedBy)
	suite.NotEqual("password123", user.PasswordHash)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_RejectsTakenUsername() {
	existing := &domain.User{UserID: "u1", Username: "siti"}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "siti").Return(existing, nil).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Username: "siti", Password: "x"}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Username: "siti", PasswordHash: hash, IsActive: true}

	suite.mockRepo.On("FindUserByUsername", suite.ctx, "siti").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(suite.ctx, "siti", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Username: "siti", PasswordHash: hash, IsActive: true}

	suite.mockRepo.On("FindUserByUsername", suite.ctx, "siti").Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(suite.ctx, "siti", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveAccount() {
	stored := &domain.User{UserID: "u1", Username: "siti", PasswordHash: "some-hash", IsActive: false}
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "siti").Return(stored, nil).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "siti", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserMapsToUnauthorized() {
	suite.mockRepo.On("FindUserByUsername", suite.ctx, "ghost").
		Return(nil, fmt.Errorf("%w: user ghost", apperrors.ErrNotFound)).Once()

	_, err := suite.service.AuthenticateUser(suite.ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesMember() {
	suite.mockRepo.On("FindUserByProviderID", suite.ctx, "google", "gid-123").
		Return(nil, fmt.Errorf("%w: oauth identity", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleMember && u.AuthProvider == "google" && u.ProviderID == "gid-123"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, "google", "gid-123", "budi@example.com", "Budi")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleMember, user.Role)
	suite.Equal("budi@example.com", user.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ReturnsExisting() {
	existing := &domain.User{UserID: "u1", Role: domain.RoleMember, AuthProvider: "google", ProviderID: "gid-123", IsActive: true}
	suite.mockRepo.On("FindUserByProviderID", suite.ctx, "google", "gid-123").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(suite.ctx, "google", "gid-123", "budi@example.com", "Budi")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestDeactivateUser_MarksDeleted() {
	stored := &domain.User{UserID: "u1", IsActive: true}
	suite.mockRepo.On("FindUserByID", suite.ctx, "u1").Return(stored, nil).Once()
	suite.mockRepo.On("MarkUserDeleted", suite.ctx, "u1", mock.AnythingOfType("time.Time"), "admin-1").
		Return(nil).Once()

	err := suite.service.DeactivateUser(suite.ctx, "u1", "admin-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearRefreshToken_NilsExpiry() {
	suite.mockRepo.On("UpdateRefreshToken", suite.ctx, "u1", "", (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(suite.ctx, "u1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
