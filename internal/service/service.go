package service

import (
	"errors"
	"fmt"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/handlers/auth"
	"github.com/GlebRadaev/seva/internal/handlers/campaigns"
	"github.com/GlebRadaev/seva/internal/handlers/donations"
	"github.com/GlebRadaev/seva/internal/handlers/payment"
	"github.com/GlebRadaev/seva/internal/handlers/users"

	pkgauth "github.com/GlebRadaev/seva/pkg/auth"
	"github.com/GlebRadaev/seva/pkg/oauth"

	"github.com/GlebRadaev/seva/internal/repo"
	"github.com/GlebRadaev/seva/internal/service/authservice"
	"github.com/GlebRadaev/seva/internal/service/campaignservice"
	"github.com/GlebRadaev/seva/internal/service/donationservice"
	"github.com/GlebRadaev/seva/internal/service/oauthservice"
	"github.com/GlebRadaev/seva/internal/service/otpservice"
	"github.com/GlebRadaev/seva/internal/service/paymentservice"
	"github.com/GlebRadaev/seva/internal/service/userservice"
)

type Services struct {
	AuthService     auth.Service
	OTPService      auth.OTPService
	OAuthService    auth.OAuthService
	CampaignService campaigns.Service
	DonationService donations.Service
	PaymentService  payment.Service
	UserService     users.Service
	TokenVerifier   pkgauth.TokenVerifier
}

// Deps are the collaborators outside the database that services talk to.
type Deps struct {
	Hasher   pkgauth.HashServiceInterface
	Tokens   pkgauth.JWTServiceInterface
	Notifier otpservice.Notifier
	Files    campaignservice.FileStore
	Gateway  paymentservice.Gateway
	Identity oauthservice.Provider
	States   oauth.StateStore
}

func New(repo *repo.Repositories, deps Deps) *Services {
	authService := authservice.New(repo.UserRepo, deps.Hasher, deps.Tokens)

	return &Services{
		AuthService:     authService,
		OTPService:      otpservice.New(repo.UserRepo, deps.Notifier),
		OAuthService:    oauthservice.New(deps.Identity, deps.States, authService),
		CampaignService: campaignservice.New(repo.CampaignRepo, deps.Files),
		DonationService: donationservice.New(repo.DonationRepo, repo.CampaignRepo, deps.Notifier),
		PaymentService:  paymentservice.New(deps.Gateway),
		UserService:     userservice.New(repo.UserRepo),
		TokenVerifier:   tokenVerifier{tokens: deps.Tokens},
	}
}

// tokenVerifier reports rejected tokens as domain.ErrUnauthenticated.
type tokenVerifier struct {
	tokens pkgauth.TokenVerifier
}

func (v tokenVerifier) Verify(token string) (int, error) {
	userID, err := v.tokens.Verify(token)
	if errors.Is(err, pkgauth.ErrInvalidToken) {
		return 0, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	return userID, err
}
