package paymentrepo

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

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (club_id, reference, type, amount, status, method, description, metadata, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		payment.ClubID, payment.Reference, payment.Type, payment.Amount, payment.Status,
		payment.Method, payment.Description, payment.Metadata, payment.ExpiresAt)
	if err := row.Scan(&payment.ID, &payment.CreatedAt); err != nil {
		zap.L().Error("can't create payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) GetByID(ctx context.Context, paymentID int) (*domain.Payment, error) {
	query := `
        SELECT p.id, p.club_id, c.name, p.reference, p.type, p.amount, p.status, p.method, p.description,
               p.metadata, p.prev_member_limit, p.prev_next_billing_date, p.expires_at, p.confirmed_at, p.confirmed_by, p.created_at
        FROM payments p
        JOIN clubs c ON c.id = p.club_id
        WHERE p.id = $1
    `
	row := r.db.QueryRow(ctx, query, paymentID)
	payment, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByClubID(ctx context.Context, clubID int) ([]domain.Payment, error) {
	query := `
        SELECT p.id, p.club_id, c.name, p.reference, p.type, p.amount, p.status, p.method, p.description,
               p.metadata, p.prev_member_limit, p.prev_next_billing_date, p.expires_at, p.confirmed_at, p.confirmed_by, p.created_at
        FROM payments p
        JOIN clubs c ON c.id = p.club_id
        WHERE p.club_id = $1
        ORDER BY p.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		zap.L().Error("can't get club payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Payment, error) {
	query := `
        SELECT p.id, p.club_id, c.name, p.reference, p.type, p.amount, p.status, p.method, p.description,
               p.metadata, p.prev_member_limit, p.prev_next_billing_date, p.expires_at, p.confirmed_at, p.confirmed_by, p.created_at
        FROM payments p
        JOIN clubs c ON c.id = p.club_id
        WHERE p.status = 'PENDING'
        ORDER BY p.created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// Confirm marks a payment CONFIRMED and stores the entitlement snapshot
// taken from the club, guarded by the expected PENDING status. A lost
// race reports zero affected rows instead of double-confirming.
func (r *Repository) Confirm(ctx context.Context, paymentID int, confirmedBy string, confirmedAt time.Time, prevMemberLimit int, prevNextBillingDate time.Time) (bool, error) {
	query := `
        UPDATE payments
        SET status = 'CONFIRMED', confirmed_at = $1, confirmed_by = $2, prev_member_limit = $3, prev_next_billing_date = $4
        WHERE id = $5 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, confirmedAt, confirmedBy, prevMemberLimit, prevNextBillingDate, paymentID)
	if err != nil {
		zap.L().Error("failed to confirm payment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkRefunded flips a payment to the terminal REFUNDED status. Only
// rows still PENDING or CONFIRMED match, so a second refund is a no-op.
func (r *Repository) MarkRefunded(ctx context.Context, paymentID int) (bool, error) {
	query := `
        UPDATE payments
        SET status = 'REFUNDED'
        WHERE id = $1 AND status IN ('PENDING', 'CONFIRMED')
    `
	tag, err := r.db.Exec(ctx, query, paymentID)
	if err != nil {
		zap.L().Error("failed to mark payment refunded", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, paymentID int) error {
	query := `
        DELETE FROM payments
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, paymentID)
	if err != nil {
		zap.L().Error("failed to delete payment", zap.Error(err))
		return err
	}
	return nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(&payment.ID, &payment.ClubID, &payment.ClubName, &payment.Reference, &payment.Type,
		&payment.Amount, &payment.Status, &payment.Method, &payment.Description, &payment.Metadata,
		&payment.PrevMemberLimit, &payment.PrevNextBillingDate, &payment.ExpiresAt,
		&payment.ConfirmedAt, &payment.ConfirmedBy, &payment.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}
