package dto

import "github.com/GlebRadaev/seva/internal/domain"

type CreateOrderRequestDTO struct {
	Amount   float64 `json:"amount" example:"500"`
	Currency string  `json:"currency,omitempty" example:"INR"`
}

type CreateOrderResponseDTO struct {
	Order *domain.PaymentOrder `json:"order"`
}
