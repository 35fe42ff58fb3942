package dto

import (
	"time"

	"github.com/CellkomStore/cellkom_store_app/internal/core/domain"
)

// CreateUserRequest registers a new account. Role is restricted at the
// handler level: only admins may create staff accounts.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required,min=3,max=50"`
	Password string          `json:"password" binding:"required,min=8"`
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"omitempty,email"`
	Role     domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN KASIR MEMBER"`
}

// UpdateUserRequest updates mutable user fields.
type UpdateUserRequest struct {
	Name     *string          `json:"name,omitempty"`
	Email    *string          `json:"email,omitempty" binding:"omitempty,email"`
	Role     *domain.UserRole `json:"role,omitempty" binding:"omitempty,oneof=ADMIN KASIR MEMBER"`
	IsActive *bool            `json:"isActive,omitempty"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	UserID    string          `json:"userID"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Email     string          `json:"email,omitempty"`
	Role      domain.UserRole `json:"role"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its public DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
