package domain

import "time"

// UserRole controls which route groups a user may access.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleKasir  UserRole = "KASIR" // Cashier: sales, service intake, installment payments
	RoleMember UserRole = "MEMBER"
)

// User represents a staff or member account.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"` // bcrypt; empty for OAuth-only members
	AuthProvider string   `json:"authProvider,omitempty"`
	ProviderID   string   `json:"-"`
	IsActive     bool     `json:"isActive"`
	// Refresh token state, stored hashed
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}
