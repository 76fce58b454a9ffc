package repo

import (
	"github.com/GlebRadaev/seva/internal/pg"
	"github.com/GlebRadaev/seva/internal/reconcile"
	campaignrepo "github.com/GlebRadaev/seva/internal/repo/campaign-repo"
	donationrepo "github.com/GlebRadaev/seva/internal/repo/donation-repo"
	userrepo "github.com/GlebRadaev/seva/internal/repo/user-repo"
	"github.com/GlebRadaev/seva/internal/service/authservice"
	"github.com/GlebRadaev/seva/internal/service/campaignservice"
	"github.com/GlebRadaev/seva/internal/service/donationservice"
	"github.com/GlebRadaev/seva/internal/service/otpservice"
	"github.com/GlebRadaev/seva/internal/service/userservice"
)

type UserRepo interface {
	authservice.Repo
	otpservice.Repo
	userservice.Repo
}

type CampaignRepo interface {
	campaignservice.Repo
	donationservice.CampaignRepo
	reconcile.CampaignRepo
}

type DonationRepo interface {
	donationservice.Repo
	reconcile.DonationRepo
}

type Repositories struct {
	UserRepo     UserRepo
	CampaignRepo CampaignRepo
	DonationRepo DonationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		CampaignRepo: campaignrepo.New(conn),
		DonationRepo: donationrepo.New(conn, txManager),
	}
}
