package services

import (
	"context"
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
	"github.com/CellkomStore/cellkom_store_app/internal/dto"
)

// UserSvcFacade defines operations for user account management.
type UserSvcFacade interface {
	// CreateUser registers a new account with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by login username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// AuthenticateUser verifies username/password credentials.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)

	// FindOrCreateOAuthUser resolves an external identity to a member
	// account, creating one on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider string, providerID string, email string, name string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// UpdateUser updates mutable user fields.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// DeactivateUser soft-deletes a user account.
	DeactivateUser(ctx context.Context, userID string, deleterUserID string) error

	// StoreRefreshToken persists the hashed refresh token for a user.
	StoreRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken removes the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error
}
