package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/pkg/clients"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

var ErrNotConfigured = errors.New("payment gateway is not configured")

type RazorpayClient struct {
	keyID   string
	secret  string
	baseURL string
	client  clients.HTTPClientI
}

func NewRazorpayClient(keyID, secret string, client clients.HTTPClientI) *RazorpayClient {
	return &RazorpayClient{keyID: keyID, secret: secret, baseURL: razorpayBaseURL, client: client}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type gatewayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder registers an order for amount minor units (paise for INR).
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*domain.PaymentOrder, error) {
	if c.keyID == "" || c.secret == "" {
		return nil, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(orderRequest{Amount: amount, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.keyID+":"+c.secret)))

	status, respBody, _, err := c.client.Post(ctx, c.baseURL+"/orders", headers, body)
	if err != nil {
		return nil, fmt.Errorf("razorpay request failed: %w", err)
	}
	if status != http.StatusOK {
		var ge gatewayError
		if json.Unmarshal(respBody, &ge) == nil && ge.Error.Description != "" {
			return nil, fmt.Errorf("razorpay returned %d: %s", status, ge.Error.Description)
		}
		return nil, fmt.Errorf("razorpay returned unexpected status %d", status)
	}

	var order domain.PaymentOrder
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to parse razorpay order: %w", err)
	}
	return &order, nil
}
