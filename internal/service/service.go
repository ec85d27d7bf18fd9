package service

import (
	"github.com/desbrava-tech/clubhub/internal/config"
	"github.com/desbrava-tech/clubhub/internal/handlers/report"
	"github.com/desbrava-tech/clubhub/internal/handlers/subscription"
	"github.com/desbrava-tech/clubhub/internal/handlers/treasury"
	"github.com/desbrava-tech/clubhub/internal/pg"
	"github.com/desbrava-tech/clubhub/internal/repo"
	reportservice "github.com/desbrava-tech/clubhub/internal/service/reportservice"
	subscriptionservice "github.com/desbrava-tech/clubhub/internal/service/subscriptionservice"
	treasuryservice "github.com/desbrava-tech/clubhub/internal/service/treasuryservice"
)

type Services struct {
	SubscriptionService subscription.Service
	TreasuryService     treasury.Service
	ReportService       report.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) *Services {
	billing := subscriptionservice.BillingConfig{
		PricePerMember:  cfg.PricePerMember,
		GracePeriodDays: cfg.GracePeriodDays,
		WarningDays:     cfg.WarningDays,
		SupportContact:  cfg.SupportContact,
	}

	subscriptionService := subscriptionservice.New(repo.ClubRepo, repo.PaymentRepo, repo.MemberRepo, txManager, billing)
	treasuryService := treasuryservice.New(repo.TransactionRepo, repo.MemberRepo, txManager)
	reportService := reportservice.New(repo.ClubRepo, repo.MemberRepo, repo.TransactionRepo)

	return &Services{
		SubscriptionService: subscriptionService,
		TreasuryService:     treasuryService,
		ReportService:       reportService,
	}
}
