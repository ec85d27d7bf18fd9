package transactionrepo

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
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const insertQuery = `
        INSERT INTO transactions (club_id, type, amount, description, category, date, due_date, status, points, proof_url, payer_id, payment_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at
    `

func (r *Repository) Create(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, insertQuery,
		tr.ClubID, tr.Type, tr.Amount, tr.Description, tr.Category, tr.Date, tr.DueDate,
		tr.Status, tr.Points, tr.ProofURL, tr.PayerID, tr.PaymentDate)
	if err := row.Scan(&tr.ID, &tr.CreatedAt); err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}
	return tr, nil
}

// CreateBatch inserts one row per beneficiary of the same economic event
// inside a single database transaction.
func (r *Repository) CreateBatch(ctx context.Context, trs []domain.Transaction) ([]domain.Transaction, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for i := range trs {
			tr := &trs[i]
			row := r.db.QueryRow(ctx, insertQuery,
				tr.ClubID, tr.Type, tr.Amount, tr.Description, tr.Category, tr.Date, tr.DueDate,
				tr.Status, tr.Points, tr.ProofURL, tr.PayerID, tr.PaymentDate)
			if err := row.Scan(&tr.ID, &tr.CreatedAt); err != nil {
				zap.L().Error("can't create transaction in batch", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trs, nil
}

func (r *Repository) GetByID(ctx context.Context, transactionID int) (*domain.Transaction, error) {
	query := `
        SELECT id, club_id, type, amount, description, category, date, due_date, status, points, proof_url, payer_id, payment_date, created_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, transactionID)
	var tr domain.Transaction
	err := row.Scan(&tr.ID, &tr.ClubID, &tr.Type, &tr.Amount, &tr.Description, &tr.Category, &tr.Date,
		&tr.DueDate, &tr.Status, &tr.Points, &tr.ProofURL, &tr.PayerID, &tr.PaymentDate, &tr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &tr, nil
}

func (r *Repository) FindByClubID(ctx context.Context, clubID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, club_id, type, amount, description, category, date, due_date, status, points, proof_url, payer_id, payment_date, created_at
        FROM transactions
        WHERE club_id = $1
        ORDER BY date DESC
    `
	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		zap.L().Error("can't get club transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var trs []domain.Transaction
	for rows.Next() {
		var tr domain.Transaction
		err := rows.Scan(&tr.ID, &tr.ClubID, &tr.Type, &tr.Amount, &tr.Description, &tr.Category, &tr.Date,
			&tr.DueDate, &tr.Status, &tr.Points, &tr.ProofURL, &tr.PayerID, &tr.PaymentDate, &tr.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		trs = append(trs, tr)
	}
	return trs, nil
}

// UpdateStatus moves a transaction from one status to another in a
// single conditional update. The caller learns from the row count
// whether the transition actually happened, which is the guard against
// settling or approving the same row twice.
func (r *Repository) UpdateStatus(ctx context.Context, transactionID int, from, to string, paymentDate *time.Time) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $1, payment_date = COALESCE($2, payment_date)
        WHERE id = $3 AND status = $4
    `
	tag, err := r.db.Exec(ctx, query, to, paymentDate, transactionID, from)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, transactionID int) error {
	query := `
        DELETE FROM transactions
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, transactionID)
	if err != nil {
		zap.L().Error("failed to delete transaction", zap.Error(err))
		return err
	}
	return nil
}
