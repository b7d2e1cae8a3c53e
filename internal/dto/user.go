package dto

import (
	"time"

	"github.com/tkhs0604/task-api/internal/models"
)

// UserDTO represents a user in API responses.
type UserDTO struct {
	ID              uint64     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LoginUserDTO is the compact user shape embedded in the login response.
type LoginUserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO.
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		EmailVerifiedAt: user.EmailVerifiedAt,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// ToLoginUserDTO converts a User model to LoginUserDTO.
func ToLoginUserDTO(user models.User) LoginUserDTO {
	return LoginUserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
