package donationservice

//go:generate mockgen -destination=mock_donationservice.go -package=donationservice . Repo,CampaignRepo,Notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/pkg/logger"
	"github.com/GlebRadaev/seva/pkg/validate"
	"go.uber.org/zap"
)

const (
	RecentLimit = 50

	thankYouText = "Thank you %s for your generous donation of ₹%d to %q. Your support means the world! - Team Seva"
)

type Repo interface {
	Record(ctx context.Context, d *domain.Donation) (*domain.Donation, int64, error)
	SumByCampaign(ctx context.Context, campaignID int) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Donation, error)
}

type CampaignRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
}

type Notifier interface {
	Notify(ctx context.Context, phone, text string) error
}

type Service struct {
	repo         Repo
	campaignRepo CampaignRepo
	notifier     Notifier
}

func New(repo Repo, campaignRepo CampaignRepo, notifier Notifier) *Service {
	return &Service{
		repo:         repo,
		campaignRepo: campaignRepo,
		notifier:     notifier,
	}
}

// RecordDonation stores the donation and bumps the campaign total atomically,
// then queues a thank-you SMS to the donor.
func (s *Service) RecordDonation(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, d.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("%w: campaign not found", domain.ErrNotFound)
	}

	d.DonorName = strings.TrimSpace(d.DonorName)
	d.Phone = strings.TrimSpace(d.Phone)
	switch {
	case d.Amount <= 0:
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	case d.DonorName == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case !validate.IsPhone(d.Phone):
		return nil, fmt.Errorf("%w: phone must be 10 digits", domain.ErrValidation)
	}
	if d.Email != nil {
		email := validate.NormalizeEmail(*d.Email)
		switch {
		case email == "":
			d.Email = nil
		case !validate.IsEmail(email):
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
		default:
			d.Email = &email
		}
	}
	if d.PaymentRef != nil && strings.TrimSpace(*d.PaymentRef) == "" {
		d.PaymentRef = nil
	}

	saved, total, err := s.repo.Record(ctx, d)
	if err != nil {
		return nil, err
	}
	logger.L(ctx).Info("donation recorded",
		zap.Int("campaignID", d.CampaignID),
		zap.Int64("amount", d.Amount),
		zap.Int64("totalRaised", total))

	text := fmt.Sprintf(thankYouText, saved.DonorName, saved.Amount, campaign.Title)
	if err := s.notifier.Notify(ctx, saved.Phone, text); err != nil {
		logger.L(ctx).Error("can't queue thank-you sms", zap.Int("donationID", saved.ID), zap.Error(err))
	}
	return saved, nil
}

// TotalFor sums the donation rows of a campaign. Unknown campaigns sum to zero.
func (s *Service) TotalFor(ctx context.Context, campaignID int) (int64, error) {
	return s.repo.SumByCampaign(ctx, campaignID)
}

func (s *Service) ListRecent(ctx context.Context) ([]domain.Donation, error) {
	return s.repo.ListRecent(ctx, RecentLimit)
}
