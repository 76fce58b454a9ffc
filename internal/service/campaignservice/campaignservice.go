package campaignservice

//go:generate mockgen -destination=mock_campaignservice.go -package=campaignservice . Repo,FileStore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/pkg/storage"
	"github.com/GlebRadaev/seva/pkg/validate"
	"go.uber.org/zap"
)

const MaxDocuments = 5

type Repo interface {
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	ListByOwner(ctx context.Context, userID int) ([]domain.Campaign, error)
	Update(ctx context.Context, id, ownerID int, patch domain.CampaignPatch) (*domain.Campaign, error)
}

type FileStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, publicPath string) error
}

type Service struct {
	repo  Repo
	files FileStore
}

func New(repo Repo, files FileStore) *Service {
	return &Service{
		repo:  repo,
		files: files,
	}
}

func validateCampaign(c *domain.Campaign) error {
	required := []struct{ field, value string }{
		{"title", c.Title},
		{"description", c.Description},
		{"organizer", c.Organizer},
		{"beneficiaryName", c.BeneficiaryName},
		{"medicalCondition", c.MedicalCondition},
		{"email", c.Email},
		{"phone", c.Phone},
		{"story", c.Story},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, r.field)
		}
	}
	if c.Goal <= 0 {
		return fmt.Errorf("%w: goal must be a positive amount", domain.ErrValidation)
	}
	if !validate.IsEmail(c.Email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	return nil
}

// Create stores the uploads and then the campaign. Files already written are removed
// when a later step fails.
func (s *Service) Create(ctx context.Context, ownerID int, c *domain.Campaign, image *domain.Upload, documents []domain.Upload) (*domain.Campaign, error) {
	c.Title = strings.TrimSpace(c.Title)
	c.Email = validate.NormalizeEmail(c.Email)
	if err := validateCampaign(c); err != nil {
		return nil, err
	}
	if len(documents) > MaxDocuments {
		return nil, fmt.Errorf("%w: at most %d documents are allowed", domain.ErrValidation, MaxDocuments)
	}
	if image != nil && !storage.Allowed(image.Filename) {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, storage.ErrUnsupportedType)
	}
	for _, d := range documents {
		if !storage.Allowed(d.Filename) {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, storage.ErrUnsupportedType)
		}
	}

	var saved []string
	if image != nil {
		p, err := s.files.Save(ctx, image.Filename, image.Body)
		if err != nil {
			zap.L().Error("can't store campaign image", zap.Error(err))
			return nil, err
		}
		saved = append(saved, p)
		c.Image = &p
	}
	c.Documents = make([]string, 0, len(documents))
	for _, d := range documents {
		p, err := s.files.Save(ctx, d.Filename, d.Body)
		if err != nil {
			zap.L().Error("can't store campaign document", zap.Error(err))
			s.discard(ctx, saved)
			return nil, err
		}
		saved = append(saved, p)
		c.Documents = append(c.Documents, p)
	}

	c.CreatedBy = ownerID
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		s.discard(ctx, saved)
		return nil, err
	}
	zap.L().Info("campaign created", zap.Int("campaignID", created.ID), zap.Int("userID", ownerID))
	return created, nil
}

func (s *Service) discard(ctx context.Context, paths []string) {
	for _, p := range paths {
		if err := s.files.Delete(ctx, p); err != nil {
			zap.L().Error("can't remove orphaned upload", zap.String("path", p), zap.Error(err))
		}
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListMine(ctx context.Context, userID int) ([]domain.Campaign, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Campaign, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: campaign not found", domain.ErrNotFound)
	}
	return c, nil
}

// Update applies a whitelisted patch. Only the creator may change a campaign.
func (s *Service) Update(ctx context.Context, userID, id int, patch domain.CampaignPatch) (*domain.Campaign, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatedBy != userID {
		zap.L().Info("campaign update by non-owner", zap.Int("campaignID", id), zap.Int("userID", userID))
		return nil, fmt.Errorf("%w: not authorized to update this campaign", domain.ErrForbidden)
	}

	if patch.Goal != nil && *patch.Goal <= 0 {
		return nil, fmt.Errorf("%w: goal must be a positive amount", domain.ErrValidation)
	}
	if patch.Email != nil {
		email := validate.NormalizeEmail(*patch.Email)
		if !validate.IsEmail(email) {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
		}
		patch.Email = &email
	}
	for _, f := range []*string{patch.Title, patch.Description, patch.Organizer, patch.BeneficiaryName,
		patch.MedicalCondition, patch.Phone, patch.Story} {
		if f != nil && strings.TrimSpace(*f) == "" {
			return nil, fmt.Errorf("%w: fields cannot be empty", domain.ErrValidation)
		}
	}

	updated, err := s.repo.Update(ctx, id, userID, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// deleted or reassigned between the read and the write
		return nil, fmt.Errorf("%w: campaign not found", domain.ErrNotFound)
	}
	return updated, nil
}
