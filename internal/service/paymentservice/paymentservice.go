package paymentservice

//go:generate mockgen -destination=mock_gateway.go -package=paymentservice . Gateway

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
	"go.uber.org/zap"
)

const DefaultCurrency = "INR"

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.PaymentOrder, error)
}

type Service struct {
	gateway Gateway
	now     func() time.Time
}

func New(gateway Gateway) *Service {
	return &Service{
		gateway: gateway,
		now:     time.Now,
	}
}

// CreateOrder opens a gateway order for amount major units (rupees); the gateway gets minor units.
func (s *Service) CreateOrder(ctx context.Context, amount float64, currency string) (*domain.PaymentOrder, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	minor := int64(math.Round(amount * 100))
	if minor <= 0 {
		return nil, fmt.Errorf("%w: amount is too small", domain.ErrValidation)
	}
	receipt := fmt.Sprintf("receipt_order_%d", s.now().UnixMilli())

	order, err := s.gateway.CreateOrder(ctx, minor, currency, receipt)
	if err != nil {
		zap.L().Error("can't create payment order", zap.String("receipt", receipt), zap.Error(err))
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	zap.L().Info("payment order created", zap.String("orderID", order.ID), zap.Int64("amount", minor))
	return order, nil
}
