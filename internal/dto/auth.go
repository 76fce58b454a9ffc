package dto

import (
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
)

type RegisterRequestDTO struct {
	Name     string `json:"name" example:"Asha Rao"`
	Email    string `json:"email" example:"asha@example.com"`
	Phone    string `json:"phone" example:"9876543210"`
	Password string `json:"password" example:"secret1"`
}

type LoginRequestDTO struct {
	Phone    string `json:"phone" example:"9876543210"`
	Password string `json:"password" example:"secret1"`
}

type SendOTPRequestDTO struct {
	Contact string `json:"contact" example:"9876543210"`
}

type VerifyOTPRequestDTO struct {
	Contact string `json:"contact" example:"9876543210"`
	OTP     string `json:"otp" example:"123456"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}

// UserDTO is the public view of a user. Password hash and OTP state never leave the server.
type UserDTO struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Asha Rao"`
	Email     *string   `json:"email,omitempty" example:"asha@example.com"`
	Phone     *string   `json:"phone,omitempty" example:"9876543210"`
	Provider  string    `json:"provider" example:"local"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Provider:  u.Provider,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
