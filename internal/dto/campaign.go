package dto

import (
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
)

type CampaignDTO struct {
	ID               int       `json:"id" example:"1"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Goal             int64     `json:"goal" example:"200000"`
	Organizer        string    `json:"organizer"`
	BeneficiaryName  string    `json:"beneficiaryName"`
	MedicalCondition string    `json:"medicalCondition"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Story            string    `json:"story"`
	Image            *string   `json:"image,omitempty" example:"/uploads/6f1c.jpg"`
	Documents        []string  `json:"documents"`
	CreatedBy        int       `json:"createdBy"`
	TotalAmount      int64     `json:"totalAmount" example:"500"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func NewCampaignDTO(c *domain.Campaign) CampaignDTO {
	docs := c.Documents
	if docs == nil {
		docs = []string{}
	}
	return CampaignDTO{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Goal:             c.Goal,
		Organizer:        c.Organizer,
		BeneficiaryName:  c.BeneficiaryName,
		MedicalCondition: c.MedicalCondition,
		Email:            c.Email,
		Phone:            c.Phone,
		Story:            c.Story,
		Image:            c.Image,
		Documents:        docs,
		CreatedBy:        c.CreatedBy,
		TotalAmount:      c.TotalRaised,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func NewCampaignDTOs(campaigns []domain.Campaign) []CampaignDTO {
	out := make([]CampaignDTO, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, NewCampaignDTO(&campaigns[i]))
	}
	return out
}

// UpdateCampaignRequestDTO lists the only fields an owner may change.
type UpdateCampaignRequestDTO struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	Goal             *int64  `json:"goal,omitempty"`
	Organizer        *string `json:"organizer,omitempty"`
	BeneficiaryName  *string `json:"beneficiaryName,omitempty"`
	MedicalCondition *string `json:"medicalCondition,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Story            *string `json:"story,omitempty"`
}

func (r UpdateCampaignRequestDTO) Patch() domain.CampaignPatch {
	return domain.CampaignPatch{
		Title:            r.Title,
		Description:      r.Description,
		Goal:             r.Goal,
		Organizer:        r.Organizer,
		BeneficiaryName:  r.BeneficiaryName,
		MedicalCondition: r.MedicalCondition,
		Email:            r.Email,
		Phone:            r.Phone,
		Story:            r.Story,
	}
}
