package domain

import (
	"io"
	"time"
)

const (
	ProviderLocal = "local"
	ProviderOAuth = "oauth"
)

type User struct {
	ID           int        `db:"id"`
	Name         string     `db:"name"`
	Email        *string    `db:"email"`
	Phone        *string    `db:"phone"`
	PasswordHash string     `db:"password_hash"`
	OTPCode      *string    `db:"otp_code"`
	OTPExpiresAt *time.Time `db:"otp_expires_at"`
	Provider     string     `db:"provider"`
	GoogleID     *string    `db:"google_id"`
	Bio          string     `db:"bio"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

type Campaign struct {
	ID               int       `db:"id"`
	Title            string    `db:"title"`
	Description      string    `db:"description"`
	Goal             int64     `db:"goal"`
	Organizer        string    `db:"organizer"`
	BeneficiaryName  string    `db:"beneficiary_name"`
	MedicalCondition string    `db:"medical_condition"`
	Email            string    `db:"email"`
	Phone            string    `db:"phone"`
	Story            string    `db:"story"`
	Image            *string   `db:"image"`
	Documents        []string  `db:"documents"`
	CreatedBy        int       `db:"created_by"`
	TotalRaised      int64     `db:"total_raised"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// CampaignPatch lists the fields an owner may change. Nil means unchanged.
type CampaignPatch struct {
	Title            *string
	Description      *string
	Goal             *int64
	Organizer        *string
	BeneficiaryName  *string
	MedicalCondition *string
	Email            *string
	Phone            *string
	Story            *string
}

// UserPatch lists the profile fields a user may change. Nil means unchanged.
type UserPatch struct {
	Name  *string
	Email *string
	Phone *string
	Bio   *string
}

// CampaignTotal is the denormalized running total of one campaign.
type CampaignTotal struct {
	ID          int
	TotalRaised int64
}

type Donation struct {
	ID         int       `db:"id"`
	CampaignID int       `db:"campaign_id"`
	DonorName  string    `db:"donor_name"`
	Amount     int64     `db:"amount"`
	Email      *string   `db:"email"`
	Phone      string    `db:"phone"`
	PaymentRef *string   `db:"payment_ref"`
	CreatedAt  time.Time `db:"created_at"`
}

type PaymentOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// ExternalProfile is what an identity provider reports about a signed-in account.
type ExternalProfile struct {
	ExternalID  string
	DisplayName string
	Email       string
}

// Upload is a file received with a request, not yet stored.
type Upload struct {
	Filename string
	Body     io.Reader
}
