package dto

import (
	"time"

	"github.com/SscSPs/workspace_finance_app/internal/core/domain"
)

// UserResponse defines the user data returned by the API. Credentials are never included.
type UserResponse struct {
	UserID        string              `json:"userID"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	AvatarURL     string              `json:"avatarUrl"`
	AuthProvider  domain.AuthProvider `json:"authProvider"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// UpdateProfileRequest replaces the editable profile fields.
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
}

// UpdateAvatarRequest carries the avatar as a base-64 data URI,
// e.g. "data:image/png;base64,iVBOR...".
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:        user.UserID,
		Name:          user.Name,
		Email:         user.Email,
		Phone:         user.Phone,
		AvatarURL:     user.AvatarURL,
		AuthProvider:  user.AuthProvider,
		CreatedAt:     user.CreatedAt,
		LastUpdatedAt: user.LastUpdatedAt,
	}
}
