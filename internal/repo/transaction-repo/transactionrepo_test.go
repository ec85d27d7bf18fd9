package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/desbrava-tech/clubhub/internal/domain"
	"github.com/desbrava-tech/clubhub/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var transactionColumns = []string{
	"id", "club_id", "type", "amount", "description", "category", "date", "due_date",
	"status", "points", "proof_url", "payer_id", "payment_date", "created_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tr := &domain.Transaction{
		ClubID:      1,
		Type:        domain.TransactionIncome,
		Amount:      15.0,
		Description: "Monthly fee",
		Category:    "mensalidade",
		Date:        now,
		Status:      domain.TransactionPending,
		Points:      10,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful creation",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(tr.ClubID, tr.Type, tr.Amount, tr.Description, tr.Category, tr.Date, tr.DueDate,
						tr.Status, tr.Points, tr.ProofURL, tr.PayerID, tr.PaymentDate).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
					WithArgs(tr.ClubID, tr.Type, tr.Amount, tr.Description, tr.Category, tr.Date, tr.DueDate,
						tr.Status, tr.Points, tr.ProofURL, tr.PayerID, tr.PaymentDate).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tr)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 5, result.ID)
			}
		})
	}
}

func TestRepository_CreateBatch(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)
	now := time.Now()

	payerA, payerB := 7, 8
	trs := []domain.Transaction{
		{ClubID: 1, Type: domain.TransactionIncome, Amount: 25.0, Category: "acampamento", Date: now, Status: domain.TransactionWaitingApproval, PayerID: &payerA},
		{ClubID: 1, Type: domain.TransactionIncome, Amount: 25.0, Category: "acampamento", Date: now, Status: domain.TransactionWaitingApproval, PayerID: &payerB},
	}

	t.Run("One row per beneficiary inside a transaction", func(t *testing.T) {
		mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		for i := range trs {
			tr := trs[i]
			rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(100+i, now)
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
				WithArgs(tr.ClubID, tr.Type, tr.Amount, tr.Description, tr.Category, tr.Date, tr.DueDate,
					tr.Status, tr.Points, tr.ProofURL, tr.PayerID, tr.PaymentDate).
				WillReturnRows(rows)
		}

		result, err := repo.CreateBatch(context.Background(), trs)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, 100, result[0].ID)
		assert.Equal(t, 101, result[1].ID)
	})

	t.Run("Insert failure aborts the batch", func(t *testing.T) {
		mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		tr := trs[0]
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
			WithArgs(tr.ClubID, tr.Type, tr.Amount, tr.Description, tr.Category, tr.Date, tr.DueDate,
				tr.Status, tr.Points, tr.ProofURL, tr.PayerID, tr.PaymentDate).
			WillReturnError(errors.New("database error"))

		result, err := repo.CreateBatch(context.Background(), trs)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing transaction",
			mockSetup: func() {
				rows := pgxmock.NewRows(transactionColumns).
					AddRow(5, 1, domain.TransactionIncome, 15.0, "Monthly fee", "mensalidade", now, nil,
						domain.TransactionPending, 10, "", nil, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(5).
					WillReturnRows(rows)
			},
			expectErr: false,
			found:     true,
		},
		{
			name: "Non-existing transaction returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(5).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			found:     false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			found:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), 5)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_FindByClubID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns transactions",
			mockSetup: func() {
				rows := pgxmock.NewRows(transactionColumns).
					AddRow(5, 1, domain.TransactionIncome, 15.0, "Monthly fee", "mensalidade", now, nil,
						domain.TransactionCompleted, 10, "", nil, &now, now).
					AddRow(6, 1, domain.TransactionExpense, 200.0, "Tent repair", "equipamento", now, nil,
						domain.TransactionPending, 0, "", nil, nil, now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE club_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE club_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByClubID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name        string
		paymentDate *time.Time
		mockSetup   func()
		expectErr   bool
		updated     bool
	}{
		{
			name:        "Pending settles to completed",
			paymentDate: &now,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions`)).
					WithArgs(domain.TransactionCompleted, &now, 5, domain.TransactionPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			updated:   true,
		},
		{
			name:        "Already completed, no rows match",
			paymentDate: &now,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions`)).
					WithArgs(domain.TransactionCompleted, &now, 5, domain.TransactionPending).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			updated:   false,
		},
		{
			name:        "Database error",
			paymentDate: &now,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions`)).
					WithArgs(domain.TransactionCompleted, &now, 5, domain.TransactionPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			updated:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateStatus(context.Background(), 5, domain.TransactionPending, domain.TransactionCompleted, tt.paymentDate)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.updated, updated)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful delete",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM transactions`)).
					WithArgs(5).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM transactions`)).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), 5)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
