package campaignrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const campaignColumns = `id, title, description, goal, organizer, beneficiary_name, medical_condition, email, phone, story, image, documents, created_by, total_raised, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Goal, &c.Organizer, &c.BeneficiaryName, &c.MedicalCondition,
		&c.Email, &c.Phone, &c.Story, &c.Image, &c.Documents, &c.CreatedBy, &c.TotalRaised, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	query := `
		INSERT INTO campaigns (title, description, goal, organizer, beneficiary_name, medical_condition, email, phone, story, image, documents, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, total_raised, created_at, updated_at
	`
	if c.Documents == nil {
		c.Documents = []string{}
	}
	err := r.db.QueryRow(ctx, query, c.Title, c.Description, c.Goal, c.Organizer, c.BeneficiaryName, c.MedicalCondition,
		c.Email, c.Phone, c.Story, c.Image, c.Documents, c.CreatedBy).
		Scan(&c.ID, &c.TotalRaised, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, "SELECT "+campaignColumns+" FROM campaigns WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			zap.L().Error("can't scan campaign", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

// List returns all campaigns, newest first.
func (r *Repository) List(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, "SELECT "+campaignColumns+" FROM campaigns ORDER BY created_at DESC, id DESC")
}

func (r *Repository) ListByOwner(ctx context.Context, userID int) ([]domain.Campaign, error) {
	return r.list(ctx, "SELECT "+campaignColumns+" FROM campaigns WHERE created_by = $1 ORDER BY created_at DESC, id DESC", userID)
}

// Update applies patch to a campaign owned by ownerID. It returns nil when no such campaign exists for that owner.
func (r *Repository) Update(ctx context.Context, id, ownerID int, patch domain.CampaignPatch) (*domain.Campaign, error) {
	query := `
		UPDATE campaigns SET
			title = COALESCE($1, title),
			description = COALESCE($2, description),
			goal = COALESCE($3, goal),
			organizer = COALESCE($4, organizer),
			beneficiary_name = COALESCE($5, beneficiary_name),
			medical_condition = COALESCE($6, medical_condition),
			email = COALESCE($7, email),
			phone = COALESCE($8, phone),
			story = COALESCE($9, story),
			updated_at = NOW()
		WHERE id = $10 AND created_by = $11
		RETURNING ` + campaignColumns
	c, err := scanCampaign(r.db.QueryRow(ctx, query, patch.Title, patch.Description, patch.Goal, patch.Organizer,
		patch.BeneficiaryName, patch.MedicalCondition, patch.Email, patch.Phone, patch.Story, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update campaign", zap.Error(err))
		return nil, err
	}
	return c, nil
}

// Totals pages through running totals in id order, starting after afterID.
func (r *Repository) Totals(ctx context.Context, afterID, limit int) ([]domain.CampaignTotal, error) {
	rows, err := r.db.Query(ctx, "SELECT id, total_raised FROM campaigns WHERE id > $1 ORDER BY id LIMIT $2", afterID, limit)
	if err != nil {
		zap.L().Error("can't load campaign totals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.CampaignTotal
	for rows.Next() {
		var t domain.CampaignTotal
		if err := rows.Scan(&t.ID, &t.TotalRaised); err != nil {
			zap.L().Error("can't scan campaign total", zap.Error(err))
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}
