package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/seva/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Reconciler, *MockCampaignRepo, *MockDonationRepo) {
	ctrl := gomock.NewController(t)
	campaigns := NewMockCampaignRepo(ctrl)
	donations := NewMockDonationRepo(ctrl)
	return New(campaigns, donations, time.Minute), campaigns, donations
}

func TestRunOnce(t *testing.T) {
	tests := []struct {
		name           string
		prepareMock    func(campaigns *MockCampaignRepo, donations *MockDonationRepo)
		expectedDrifts []Drift
		expectedError  string
	}{
		{
			name: "Consistent ledger",
			prepareMock: func(campaigns *MockCampaignRepo, donations *MockDonationRepo) {
				campaigns.EXPECT().Totals(gomock.Any(), 0, 2).Return([]domain.CampaignTotal{{ID: 1, TotalRaised: 800}, {ID: 2}}, nil)
				campaigns.EXPECT().Totals(gomock.Any(), 2, 2).Return(nil, nil)
				donations.EXPECT().SumByCampaign(gomock.Any(), 1).Return(int64(800), nil)
				donations.EXPECT().SumByCampaign(gomock.Any(), 2).Return(int64(0), nil)
			},
		},
		{
			name: "Drift across pages",
			prepareMock: func(campaigns *MockCampaignRepo, donations *MockDonationRepo) {
				campaigns.EXPECT().Totals(gomock.Any(), 0, 2).Return([]domain.CampaignTotal{{ID: 1, TotalRaised: 500}, {ID: 3, TotalRaised: 100}}, nil)
				campaigns.EXPECT().Totals(gomock.Any(), 3, 2).Return([]domain.CampaignTotal{{ID: 4, TotalRaised: 10}}, nil)
				donations.EXPECT().SumByCampaign(gomock.Any(), 1).Return(int64(800), nil)
				donations.EXPECT().SumByCampaign(gomock.Any(), 3).Return(int64(100), nil)
				donations.EXPECT().SumByCampaign(gomock.Any(), 4).Return(int64(0), nil)
			},
			expectedDrifts: []Drift{
				{CampaignID: 1, Running: 500, Actual: 800},
				{CampaignID: 4, Running: 10, Actual: 0},
			},
		},
		{
			name: "Totals query fails",
			prepareMock: func(campaigns *MockCampaignRepo, _ *MockDonationRepo) {
				campaigns.EXPECT().Totals(gomock.Any(), 0, 2).Return(nil, errors.New("database error"))
			},
			expectedError: "database error",
		},
		{
			name: "Sum query fails",
			prepareMock: func(campaigns *MockCampaignRepo, donations *MockDonationRepo) {
				campaigns.EXPECT().Totals(gomock.Any(), 0, 2).Return([]domain.CampaignTotal{{ID: 1}}, nil)
				donations.EXPECT().SumByCampaign(gomock.Any(), 1).Return(int64(0), errors.New("timeout"))
			},
			expectedError: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, campaigns, donations := NewMock(t)
			r.pageSize = 2
			tt.prepareMock(campaigns, donations)

			drifts, err := r.RunOnce(context.Background())

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDrifts, drifts)
		})
	}
}

func TestStart(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		r, _, _ := NewMock(t)
		r.interval = 0

		done := make(chan struct{})
		go func() {
			r.Start(context.Background())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("disabled reconciler should return immediately")
		}
	})

	t.Run("Ticks until canceled", func(t *testing.T) {
		r, campaigns, _ := NewMock(t)
		r.interval = 5 * time.Millisecond
		campaigns.EXPECT().Totals(gomock.Any(), 0, pageSize).Return(nil, nil).MinTimes(1)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			r.Start(ctx)
			close(done)
		}()

		time.Sleep(40 * time.Millisecond)
		cancel()
		<-done
	})
}
