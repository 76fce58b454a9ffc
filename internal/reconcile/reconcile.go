package reconcile

//go:generate mockgen -destination=mock_reconcile.go -package=reconcile . CampaignRepo,DonationRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	pageSize    = 500
	concurrency = 4
)

type CampaignRepo interface {
	Totals(ctx context.Context, afterID, limit int) ([]domain.CampaignTotal, error)
}

type DonationRepo interface {
	SumByCampaign(ctx context.Context, campaignID int) (int64, error)
}

// Drift is a campaign whose running total disagrees with its donation rows.
type Drift struct {
	CampaignID int
	Running    int64
	Actual     int64
}

// Reconciler periodically compares running totals with the sum of donations.
// It only reports; totals are never rewritten here.
type Reconciler struct {
	campaigns CampaignRepo
	donations DonationRepo
	interval  time.Duration
	pageSize  int
}

func New(campaigns CampaignRepo, donations DonationRepo, interval time.Duration) *Reconciler {
	return &Reconciler{
		campaigns: campaigns,
		donations: donations,
		interval:  interval,
		pageSize:  pageSize,
	}
}

// Start blocks until ctx is done. A zero interval disables the loop.
func (r *Reconciler) Start(ctx context.Context) {
	if r.interval <= 0 {
		zap.L().Info("ledger reconciler disabled")
		return
	}
	zap.L().Info("ledger reconciler started", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping reconciler")
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				zap.L().Error("ledger reconciliation failed", zap.Error(err))
			}
		}
	}
}

// RunOnce checks every campaign and returns the drifts found, ordered by campaign id.
func (r *Reconciler) RunOnce(ctx context.Context) ([]Drift, error) {
	var (
		mu     sync.Mutex
		drifts []Drift
	)
	checked := 0
	afterID := 0
	for {
		page, err := r.campaigns.Totals(ctx, afterID, r.pageSize)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for _, c := range page {
			c := c
			g.Go(func() error {
				sum, err := r.donations.SumByCampaign(gctx, c.ID)
				if err != nil {
					return err
				}
				if sum != c.TotalRaised {
					mu.Lock()
					drifts = append(drifts, Drift{CampaignID: c.ID, Running: c.TotalRaised, Actual: sum})
					mu.Unlock()
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		checked += len(page)
		afterID = page[len(page)-1].ID
		if len(page) < r.pageSize {
			break
		}
	}

	sort.Slice(drifts, func(i, j int) bool { return drifts[i].CampaignID < drifts[j].CampaignID })
	for _, d := range drifts {
		zap.L().Error("campaign total drift",
			zap.Int("campaignID", d.CampaignID),
			zap.Int64("runningTotal", d.Running),
			zap.Int64("donationSum", d.Actual))
	}
	zap.L().Info("ledger reconciliation finished", zap.Int("campaigns", checked), zap.Int("drifts", len(drifts)))
	return drifts, nil
}
