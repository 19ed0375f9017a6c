// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "iskolar_backend/internals/features/users/auth/model"
)

type RegisterDTO struct {
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserFullName string `json:"user_full_name" validate:"required,min=2,max=120"`
}

type LoginDTO struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserFullName  string    `json:"user_full_name"`
	UserRole      string    `json:"user_role"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserEmail:     m.UserEmail,
		UserFullName:  m.UserFullName,
		UserRole:      m.UserRole,
		UserCreatedAt: m.UserCreatedAt,
	}
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
