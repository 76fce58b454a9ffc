package dto

import (
	"encoding/json"
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
)

type DonateRequestDTO struct {
	CampaignID        json.Number `json:"campaignId" swaggertype:"integer" example:"1"`
	Amount            int64       `json:"amount" example:"500"`
	Name              string      `json:"name" example:"Asha"`
	Phone             string      `json:"phone" example:"9876543210"`
	Email             *string     `json:"email,omitempty" example:"asha@example.com"`
	PaymentRef        *string     `json:"paymentRef,omitempty" example:"pay_29QQoUBi66xm2f"`
	RazorpayPaymentID *string     `json:"razorpay_payment_id,omitempty"`
}

// Reference prefers paymentRef and falls back to the gateway's field name.
func (r DonateRequestDTO) Reference() *string {
	if r.PaymentRef != nil {
		return r.PaymentRef
	}
	return r.RazorpayPaymentID
}

type DonationDTO struct {
	ID         int       `json:"id"`
	CampaignID int       `json:"campaignId"`
	Name       string    `json:"name"`
	Amount     int64     `json:"amount"`
	Email      *string   `json:"email,omitempty"`
	Phone      string    `json:"phone"`
	PaymentRef *string   `json:"paymentRef,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewDonationDTOs(donations []domain.Donation) []DonationDTO {
	out := make([]DonationDTO, 0, len(donations))
	for _, d := range donations {
		out = append(out, DonationDTO{
			ID:         d.ID,
			CampaignID: d.CampaignID,
			Name:       d.DonorName,
			Amount:     d.Amount,
			Email:      d.Email,
			Phone:      d.Phone,
			PaymentRef: d.PaymentRef,
			CreatedAt:  d.CreatedAt,
		})
	}
	return out
}

type TotalResponseDTO struct {
	Total int64 `json:"total" example:"800"`
}
