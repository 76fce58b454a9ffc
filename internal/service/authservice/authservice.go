package authservice

//go:generate mockgen -destination=mock_repo.go -package=authservice . Repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/pkg/auth"
	"github.com/GlebRadaev/seva/pkg/validate"
	"go.uber.org/zap"
)

const defaultOAuthName = "Seva User"

type Repo interface {
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	LinkGoogleID(ctx context.Context, userID int, googleID string) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) RegisterLocal(ctx context.Context, name, email, phone, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = validate.NormalizeEmail(email)
	phone = strings.TrimSpace(phone)

	switch {
	case name == "" || email == "" || phone == "" || password == "":
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	case !validate.IsName(name):
		return nil, fmt.Errorf("%w: name must be at least %d characters", domain.ErrValidation, validate.MinNameLen)
	case !validate.IsEmail(email):
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	case !validate.IsPhone(phone):
		return nil, fmt.Errorf("%w: invalid phone number format", domain.ErrValidation)
	case len(password) < validate.MinPasswordLen:
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, validate.MinPasswordLen)
	}

	if err := s.ensureUnique(ctx, email, phone); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Name:         name,
		Email:        &email,
		Phone:        &phone,
		PasswordHash: hashedPassword,
		Provider:     domain.ProviderLocal,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			zap.L().Error("can't create user: ", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.Int("userID", newUser.ID))
	return newUser, nil
}

// ensureUnique gives a friendly early answer; the unique indexes still decide under races.
func (s *Service) ensureUnique(ctx context.Context, email, phone string) error {
	byEmail, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	byPhone, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if byEmail != nil || byPhone != nil {
		zap.L().Info("user already exists", zap.String("phone", phone))
		return domain.ErrConflict
	}
	return nil
}

func (s *Service) AuthenticateLocal(ctx context.Context, phone, password string) (*domain.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, fmt.Errorf("%w: mobile number and password are required", domain.ErrValidation)
	}
	if !validate.IsPhone(phone) {
		return nil, fmt.Errorf("%w: invalid mobile number format", domain.ErrValidation)
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		zap.L().Info("login for unknown phone", zap.String("phone", phone))
		return nil, fmt.Errorf("%w: user not found", domain.ErrNotFound)
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.Int("userID", user.ID))
		return nil, domain.ErrInvalidCredentials
	}

	zap.L().Info("user successfully authenticated", zap.Int("userID", user.ID))
	return user, nil
}

// LinkOrCreateOAuthUser resolves an external identity to exactly one local user.
// Lookup order is external id, then email (linking the id to that account), then a new account.
func (s *Service) LinkOrCreateOAuthUser(ctx context.Context, externalID, displayName, email string) (*domain.User, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: external id is required", domain.ErrValidation)
	}

	user, err := s.userRepo.FindByGoogleID(ctx, externalID)
	if err != nil || user != nil {
		return user, err
	}

	email = validate.NormalizeEmail(email)
	if email != "" {
		existing, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return s.link(ctx, existing, externalID)
		}
	}

	name := strings.TrimSpace(displayName)
	if name == "" {
		name = defaultOAuthName
	}
	newUser := &domain.User{Name: name, Provider: domain.ProviderOAuth, GoogleID: &externalID}
	if email != "" {
		newUser.Email = &email
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if errors.Is(err, domain.ErrConflict) {
		// A concurrent callback for the same identity won the insert.
		return s.findLinked(ctx, externalID)
	}
	if err != nil {
		zap.L().Error("can't create oauth user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("oauth user created", zap.Int("userID", created.ID))
	return created, nil
}

func (s *Service) link(ctx context.Context, existing *domain.User, externalID string) (*domain.User, error) {
	if existing.GoogleID != nil && *existing.GoogleID != externalID {
		zap.L().Info("email already linked to another google account", zap.Int("userID", existing.ID))
		return nil, fmt.Errorf("%w: email linked to another account", domain.ErrConflict)
	}

	linked, err := s.userRepo.LinkGoogleID(ctx, existing.ID, externalID)
	if err != nil {
		return nil, err
	}
	if linked == nil {
		return s.findLinked(ctx, externalID)
	}
	zap.L().Info("google account linked to existing user", zap.Int("userID", linked.ID))
	return linked, nil
}

func (s *Service) findLinked(ctx context.Context, externalID string) (*domain.User, error) {
	user, err := s.userRepo.FindByGoogleID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: could not link external identity", domain.ErrConflict)
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.Issue(userID)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
