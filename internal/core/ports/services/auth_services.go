package services

import (
	"context"
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// TokenSvcFacade defines JWT and refresh token operations.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user. The role
	// claim drives the route guard middleware.
	GenerateAccessToken(ctx context.Context, user *domain.User) (token string, expiresAt time.Time, err error)

	// GenerateRefreshToken creates a new opaque refresh token and stores
	// its hash against the user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (token string, expiresAt time.Time, err error)

	// ValidateRefreshToken checks a raw refresh token against the stored
	// hash and returns the user on success.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade defines the Google sign-in flow used by storefront members.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the Google consent redirect URL for the given
	// anti-CSRF state.
	AuthCodeURL(state string) string

	// ExchangeCode trades an authorization code for a validated identity
	// and resolves it to a member account.
	ExchangeCode(ctx context.Context, code string) (*domain.User, error)
}
