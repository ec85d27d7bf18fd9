package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/desbrava-tech/clubhub/internal/config"
	"github.com/desbrava-tech/clubhub/internal/domain"
	"github.com/desbrava-tech/clubhub/internal/metrics"
	"github.com/desbrava-tech/clubhub/internal/service/subscriptionservice"
)

// SubscriptionService is the slice of the subscription manager the
// sweeper drives.
type SubscriptionService interface {
	CheckExpiredSubscriptions(ctx context.Context) (*domain.SweepResult, error)
}

// Notifier receives renewal warnings for clubs approaching their billing
// date. Mail and push delivery are external collaborators; the default
// implementation logs.
type Notifier interface {
	NotifyRenewalDue(ctx context.Context, club domain.Club, daysLeft int) error
}

type LogNotifier struct {
	supportContact string
}

func NewLogNotifier(supportContact string) *LogNotifier {
	return &LogNotifier{supportContact: supportContact}
}

func (n *LogNotifier) NotifyRenewalDue(_ context.Context, club domain.Club, daysLeft int) error {
	zap.L().Warn("club renewal due",
		zap.Int("clubID", club.ID),
		zap.String("club", club.Name),
		zap.Int("daysLeft", daysLeft),
		zap.Time("nextBillingDate", club.NextBillingDate),
		zap.String("supportContact", n.supportContact))
	return nil
}

// warned tracks clubs a warning is currently in flight for, so a slow
// notifier never receives the same club twice from overlapping ticks.
var warned sync.Map

type Service struct {
	subscriptions SubscriptionService
	clubRepo      subscriptionservice.ClubRepo
	notifier      Notifier
	workerPool    WorkerPoolI
	warningDays   []int
	interval      time.Duration
}

func New(cfg *config.Config, subscriptions SubscriptionService, clubRepo subscriptionservice.ClubRepo, notifier Notifier) *Service {
	return &Service{
		subscriptions: subscriptions,
		clubRepo:      clubRepo,
		notifier:      notifier,
		workerPool:    NewWorkerPool(10),
		warningDays:   cfg.WarningDays,
		interval:      cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Subscription sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	if _, err := s.subscriptions.CheckExpiredSubscriptions(ctx); err != nil {
		zap.L().Error("expiry sweep failed", zap.Error(err))
	}
	s.dispatchWarnings(ctx)
}

// dispatchWarnings finds ACTIVE clubs whose billing date falls within
// the largest warning threshold and fans one notification per club out
// through the worker pool.
func (s *Service) dispatchWarnings(ctx context.Context) {
	if len(s.warningDays) == 0 {
		return
	}
	maxDays := s.warningDays[0]
	for _, d := range s.warningDays[1:] {
		if d > maxDays {
			maxDays = d
		}
	}

	now := time.Now()
	clubs, err := s.clubRepo.FindExpiringBetween(ctx, now, now.AddDate(0, 0, maxDays))
	if err != nil {
		zap.L().Error("failed to fetch clubs for renewal warnings", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, club := range clubs {
		club := club

		daysLeft := int(club.NextBillingDate.Sub(now).Hours() / 24)
		if !s.isWarningDay(daysLeft) {
			continue
		}
		if _, loaded := warned.LoadOrStore(club.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer warned.Delete(club.ID)
				if err := s.notifier.NotifyRenewalDue(ctx, club, daysLeft); err != nil {
					return err
				}
				metrics.IncRenewalWarning()
				return nil
			})
			if err != nil {
				warned.Delete(club.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching renewal warnings", zap.Error(err))
	}
}

func (s *Service) isWarningDay(daysLeft int) bool {
	for _, d := range s.warningDays {
		if daysLeft == d {
			return true
		}
	}
	return false
}
