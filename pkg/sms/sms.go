package sms

//go:generate mockgen -destination=mock_sender.go -package=sms . Sender

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/seva/pkg/clients"
	"go.uber.org/zap"
)

const (
	twilioBaseURL = "https://api.twilio.com/2010-04-01"
	CountryPrefix = "+91"
)

type Sender interface {
	Send(ctx context.Context, to, body string) error
}

type Config struct {
	AccountSID string
	AuthToken  string
	From       string
}

func (c Config) enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.From != ""
}

// New returns a Twilio sender, or a sender that only logs when credentials are absent.
func New(cfg Config, client clients.HTTPClientI) Sender {
	if !cfg.enabled() {
		zap.L().Warn("twilio credentials not set, sms delivery disabled")
		return DisabledSender{}
	}
	return NewTwilioSender(cfg, client)
}

type TwilioSender struct {
	cfg     Config
	baseURL string
	client  clients.HTTPClientI
}

func NewTwilioSender(cfg Config, client clients.HTTPClientI) *TwilioSender {
	return &TwilioSender{cfg: cfg, baseURL: twilioBaseURL, client: client}
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("To", E164(to))
	form.Set("From", s.cfg.From)
	form.Set("Body", body)

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")
	headers.Set("Authorization", "Basic "+basicAuth(s.cfg.AccountSID, s.cfg.AuthToken))

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.cfg.AccountSID)
	status, respBody, _, err := s.client.Post(ctx, endpoint, headers, []byte(form.Encode()))
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	if status != http.StatusCreated && status != http.StatusOK {
		var te twilioError
		if json.Unmarshal(respBody, &te) == nil && te.Message != "" {
			return fmt.Errorf("twilio returned %d: %s (code %d)", status, te.Message, te.Code)
		}
		return fmt.Errorf("twilio returned unexpected status %d", status)
	}
	return nil
}

// E164 prefixes a bare national number with the country code.
func E164(phone string) string {
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return CountryPrefix + phone
}

func basicAuth(user, pass string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
}

type DisabledSender struct{}

func (DisabledSender) Send(_ context.Context, to, _ string) error {
	zap.L().Info("sms delivery disabled, message dropped", zap.String("to", E164(to)))
	return nil
}
