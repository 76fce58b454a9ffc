package otpservice

//go:generate mockgen -destination=mock_otpservice.go -package=otpservice . Repo,Notifier

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/pkg/validate"
	"go.uber.org/zap"
)

const (
	// TTL is how long an issued code stays valid.
	TTL = 5 * time.Minute
	// ResendInterval is the minimum gap between two codes for the same phone.
	ResendInterval = 60 * time.Second

	codeDigits  = 6
	messageText = "Your OTP for Seva login is: %s"
)

type Repo interface {
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	SetOTP(ctx context.Context, phone, code string, expiresAt, reissueAfter time.Time) (bool, error)
	ConsumeOTP(ctx context.Context, phone, code string, now time.Time) (*domain.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, phone, text string) error
}

type Service struct {
	repo     Repo
	notifier Notifier
	now      func() time.Time
	generate func() (string, error)
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		generate: generateCode,
	}
}

// Issue creates a code for a registered phone and queues it for delivery.
// A code issued less than ResendInterval ago blocks a new one with domain.ErrRateLimited.
func (s *Service) Issue(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if !validate.IsPhone(phone) {
		return fmt.Errorf("%w: invalid mobile number format", domain.ErrValidation)
	}

	user, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: mobile number not registered", domain.ErrNotFound)
	}

	code, err := s.generate()
	if err != nil {
		zap.L().Error("can't generate otp", zap.Error(err))
		return err
	}

	// A pending code expiring at or before now+TTL-ResendInterval was issued at least ResendInterval ago.
	now := s.now()
	stored, err := s.repo.SetOTP(ctx, phone, code, now.Add(TTL), now.Add(TTL-ResendInterval))
	if err != nil {
		return err
	}
	if !stored {
		zap.L().Info("otp requested too soon", zap.Int("userID", user.ID))
		return domain.ErrRateLimited
	}

	if err := s.notifier.Notify(ctx, phone, fmt.Sprintf(messageText, code)); err != nil {
		zap.L().Error("can't queue otp sms", zap.Int("userID", user.ID), zap.Error(err))
	}
	zap.L().Info("otp issued", zap.Int("userID", user.ID))
	return nil
}

// Verify consumes a matching unexpired code. Each code verifies at most once.
func (s *Service) Verify(ctx context.Context, phone, code string) (*domain.User, error) {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if !validate.IsPhone(phone) || !validate.IsOTP(code) {
		return nil, domain.ErrInvalidOTP
	}

	user, err := s.repo.ConsumeOTP(ctx, phone, code, s.now())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidOTP
	}
	zap.L().Info("otp verified", zap.Int("userID", user.ID))
	return user, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeDigits, n.Int64()), nil
}
