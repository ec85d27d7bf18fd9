package clubrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/desbrava-tech/clubhub/internal/domain"
	"github.com/desbrava-tech/clubhub/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, clubID int) (*domain.Club, error) {
	query := `
        SELECT id, name, member_limit, subscription_status, next_billing_date, grace_period_days, plan_tier, created_at
        FROM clubs
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, clubID)
	var club domain.Club
	err := row.Scan(&club.ID, &club.Name, &club.MemberLimit, &club.SubscriptionStatus, &club.NextBillingDate, &club.GracePeriodDays, &club.PlanTier, &club.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get club", zap.Error(err))
		return nil, err
	}
	return &club, nil
}

// UpdateEntitlements writes the billing state of a club in one statement.
func (r *Repository) UpdateEntitlements(ctx context.Context, clubID int, status string, nextBillingDate time.Time, memberLimit int) error {
	query := `
        UPDATE clubs
        SET subscription_status = $1, next_billing_date = $2, member_limit = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, status, nextBillingDate, memberLimit, clubID)
	if err != nil {
		zap.L().Error("failed to update club entitlements", zap.Error(err))
		return err
	}
	return nil
}

// CountExpired counts ACTIVE clubs whose billing date has passed,
// regardless of grace.
func (r *Repository) CountExpired(ctx context.Context, now time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM clubs
        WHERE subscription_status = 'ACTIVE' AND next_billing_date < $1
    `
	row := r.db.QueryRow(ctx, query, now)
	var count int
	if err := row.Scan(&count); err != nil {
		zap.L().Error("failed to count expired clubs", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// DemoteExpired flips ACTIVE clubs past their grace window to OVERDUE in
// a single conditional update and reports how many rows changed.
func (r *Repository) DemoteExpired(ctx context.Context, now time.Time) (int, error) {
	query := `
        UPDATE clubs
        SET subscription_status = 'OVERDUE'
        WHERE subscription_status = 'ACTIVE'
          AND next_billing_date + make_interval(days => grace_period_days) < $1
    `
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to demote expired clubs", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// FindExpiringBetween lists ACTIVE clubs whose billing date falls inside
// the window, used by the sweeper to emit renewal warnings.
func (r *Repository) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Club, error) {
	query := `
        SELECT id, name, member_limit, subscription_status, next_billing_date, grace_period_days, plan_tier, created_at
        FROM clubs
        WHERE subscription_status = 'ACTIVE' AND next_billing_date >= $1 AND next_billing_date <= $2
        ORDER BY next_billing_date ASC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get expiring clubs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var clubs []domain.Club
	for rows.Next() {
		var club domain.Club
		err := rows.Scan(&club.ID, &club.Name, &club.MemberLimit, &club.SubscriptionStatus, &club.NextBillingDate, &club.GracePeriodDays, &club.PlanTier, &club.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan club row", zap.Error(err))
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, nil
}
