package donationrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/GlebRadaev/seva/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Record inserts the donation and adds its amount to the campaign's running total
// in one transaction. The increment happens in SQL, so concurrent donations never
// overwrite each other. It returns the campaign's new total.
func (r *Repository) Record(ctx context.Context, d *domain.Donation) (*domain.Donation, int64, error) {
	incrementQuery := `
		UPDATE campaigns SET total_raised = total_raised + $1
		WHERE id = $2
		RETURNING total_raised
	`
	insertQuery := `
		INSERT INTO donations (campaign_id, donor_name, amount, email, phone, payment_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	var total int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := r.db.QueryRow(ctx, incrementQuery, d.Amount, d.CampaignID).Scan(&total); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: campaign %d", domain.ErrNotFound, d.CampaignID)
			}
			zap.L().Error("failed to increment campaign total", zap.Error(err))
			return err
		}
		err := r.db.QueryRow(ctx, insertQuery, d.CampaignID, d.DonorName, d.Amount, d.Email, d.Phone, d.PaymentRef).
			Scan(&d.ID, &d.CreatedAt)
		if err != nil {
			zap.L().Error("failed to insert donation", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return d, total, nil
}

// SumByCampaign recomputes a campaign's total from the donation rows themselves.
func (r *Repository) SumByCampaign(ctx context.Context, campaignID int) (int64, error) {
	var sum int64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0)::BIGINT FROM donations WHERE campaign_id = $1", campaignID).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum donations", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	query := `
		SELECT id, campaign_id, donor_name, amount, email, phone, payment_ref, created_at
		FROM donations
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to list donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := make([]domain.Donation, 0, limit)
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.DonorName, &d.Amount, &d.Email, &d.Phone, &d.PaymentRef, &d.CreatedAt); err != nil {
			zap.L().Error("failed to scan donation", zap.Error(err))
			return nil, err
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("rows iteration error", zap.Error(err))
		return nil, err
	}
	return donations, nil
}
