package oauthservice

//go:generate mockgen -destination=mock_oauthservice.go -package=oauthservice . Provider,Accounts

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/pkg/oauth"
	"go.uber.org/zap"
)

type Provider interface {
	Configured() bool
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.ExternalProfile, error)
}

type Accounts interface {
	LinkOrCreateOAuthUser(ctx context.Context, externalID, displayName, email string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type Service struct {
	provider Provider
	states   oauth.StateStore
	accounts Accounts
	newState func() string
}

func New(provider Provider, states oauth.StateStore, accounts Accounts) *Service {
	return &Service{
		provider: provider,
		states:   states,
		accounts: accounts,
		newState: oauth.NewState,
	}
}

// Begin remembers a one-time state and returns the provider consent URL carrying it.
func (s *Service) Begin(ctx context.Context) (string, error) {
	if !s.provider.Configured() {
		return "", fmt.Errorf("%w: google sign-in is not configured", domain.ErrAuthProvider)
	}
	state := s.newState()
	if err := s.states.Put(ctx, state, oauth.StateTTL); err != nil {
		zap.L().Error("can't store oauth state", zap.Error(err))
		return "", fmt.Errorf("%w: can't start sign-in", domain.ErrAuthProvider)
	}
	return s.provider.AuthURL(state), nil
}

// Complete finishes the redirect flow and returns a session token.
// Every failure is reported as domain.ErrAuthProvider; the cause is only logged.
func (s *Service) Complete(ctx context.Context, state, code string) (string, error) {
	if state == "" || code == "" {
		return "", fmt.Errorf("%w: missing state or code", domain.ErrAuthProvider)
	}

	ok, err := s.states.Consume(ctx, state)
	if err != nil {
		zap.L().Error("can't consume oauth state", zap.Error(err))
		return "", fmt.Errorf("%w: can't verify state", domain.ErrAuthProvider)
	}
	if !ok {
		zap.L().Info("unknown or reused oauth state")
		return "", fmt.Errorf("%w: invalid state", domain.ErrAuthProvider)
	}

	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		zap.L().Error("oauth exchange failed", zap.Error(err))
		return "", fmt.Errorf("%w: exchange failed", domain.ErrAuthProvider)
	}

	user, err := s.accounts.LinkOrCreateOAuthUser(ctx, profile.ExternalID, profile.DisplayName, profile.Email)
	if err != nil {
		zap.L().Error("can't link oauth user", zap.String("externalID", profile.ExternalID), zap.Error(err))
		return "", fmt.Errorf("%w: can't sign in", domain.ErrAuthProvider)
	}

	token, err := s.accounts.GenerateToken(user.ID)
	if err != nil {
		zap.L().Error("can't issue token", zap.Int("userID", user.ID), zap.Error(err))
		return "", fmt.Errorf("%w: can't sign in", domain.ErrAuthProvider)
	}
	zap.L().Info("oauth sign-in", zap.Int("userID", user.ID))
	return token, nil
}
