package dto

type ProfileResponseDTO struct {
	Success bool     `json:"success"`
	Data    *UserDTO `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
}

type UpdateProfileRequestDTO struct {
	Name  *string `json:"name,omitempty" example:"Asha Rao"`
	Email *string `json:"email,omitempty" example:"asha@example.com"`
	Phone *string `json:"phone,omitempty" example:"9876543210"`
	Bio   *string `json:"bio,omitempty" example:"Volunteer"`
}
