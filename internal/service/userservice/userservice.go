package userservice

//go:generate mockgen -destination=mock_repo.go -package=userservice . Repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int, patch domain.UserPatch) (*domain.User, error)
}

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{userRepo: repo}
}

func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int, patch domain.UserPatch) (*domain.User, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if !validate.IsName(name) {
			return nil, fmt.Errorf("%w: name must be at least %d characters", domain.ErrValidation, validate.MinNameLen)
		}
		patch.Name = &name
	}
	if patch.Email != nil {
		email := validate.NormalizeEmail(*patch.Email)
		if !validate.IsEmail(email) {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
		}
		patch.Email = &email
	}
	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if !validate.IsPhone(phone) {
			return nil, fmt.Errorf("%w: invalid phone number format", domain.ErrValidation)
		}
		patch.Phone = &phone
	}
	if patch.Bio != nil && !validate.IsBio(*patch.Bio) {
		return nil, fmt.Errorf("%w: bio cannot exceed %d characters", domain.ErrValidation, validate.MaxBioLen)
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	zap.L().Info("profile updated", zap.Int("userID", userID))
	return user, nil
}
