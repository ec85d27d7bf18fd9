package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/desbrava-tech/clubhub/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var paymentColumns = []string{
	"id", "club_id", "name", "reference", "type", "amount", "status", "method", "description",
	"metadata", "prev_member_limit", "prev_next_billing_date", "expires_at", "confirmed_at", "confirmed_by", "created_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	payment := &domain.Payment{
		ClubID:      1,
		Reference:   "ref-1",
		Type:        domain.PaymentTypeSubscription,
		Amount:      300.0,
		Status:      domain.PaymentPending,
		Method:      domain.PaymentMethodPix,
		Description: "Quarterly - 50 Accesses",
		Metadata:    domain.PaymentMetadata{MemberCount: 50, Months: 3},
		ExpiresAt:   now.Add(24 * time.Hour),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful creation",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payments`)).
					WithArgs(payment.ClubID, payment.Reference, payment.Type, payment.Amount, payment.Status,
						payment.Method, payment.Description, payment.Metadata, payment.ExpiresAt).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payments`)).
					WithArgs(payment.ClubID, payment.Reference, payment.Type, payment.Amount, payment.Status,
						payment.Method, payment.Description, payment.Metadata, payment.ExpiresAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), payment)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		paymentID int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name:      "Existing payment",
			paymentID: 10,
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentColumns).
					AddRow(10, 1, "Clube A", "ref-1", domain.PaymentTypeSubscription, 300.0, domain.PaymentPending,
						domain.PaymentMethodPix, "Quarterly - 50 Accesses", domain.PaymentMetadata{MemberCount: 50, Months: 3},
						nil, nil, now.Add(24*time.Hour), nil, "", now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payments p`)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectErr: false,
			found:     true,
		},
		{
			name:      "Non-existing payment returns nil",
			paymentID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payments p`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			found:     false,
		},
		{
			name:      "Database error",
			paymentID: 10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payments p`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			found:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.paymentID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, "Clube A", result.ClubName)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_FindByClubID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns payments",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentColumns).
					AddRow(10, 1, "Clube A", "ref-1", domain.PaymentTypeSubscription, 300.0, domain.PaymentConfirmed,
						domain.PaymentMethodPix, "Quarterly - 50 Accesses", domain.PaymentMetadata{MemberCount: 50, Months: 3},
						nil, nil, now, &now, "7", now).
					AddRow(11, 1, "Clube A", "ref-2", domain.PaymentTypeMemberAddition, 20.0, domain.PaymentPending,
						domain.PaymentMethodPix, "Extra accesses", domain.PaymentMetadata{NewMemberLimit: 60},
						nil, nil, now, nil, "", now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.club_id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.club_id = $1`)).
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

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Returns pending payments",
			mockSetup: func() {
				rows := pgxmock.NewRows(paymentColumns).
					AddRow(10, 1, "Clube A", "ref-1", domain.PaymentTypeSubscription, 300.0, domain.PaymentPending,
						domain.PaymentMethodPix, "Quarterly - 50 Accesses", domain.PaymentMetadata{MemberCount: 50, Months: 3},
						nil, nil, now, nil, "", now)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.status = 'PENDING'`)).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.status = 'PENDING'`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPending(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.count)
		})
	}
}

func TestRepository_Confirm(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	prevNext := now.AddDate(0, 1, 0)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		confirmed bool
	}{
		{
			name: "Pending payment confirmed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE payments`)).
					WithArgs(now, "7", 50, prevNext, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			confirmed: true,
		},
		{
			name: "Already confirmed, no rows match",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE payments`)).
					WithArgs(now, "7", 50, prevNext, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			confirmed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE payments`)).
					WithArgs(now, "7", 50, prevNext, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			confirmed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			confirmed, err := repo.Confirm(context.Background(), 10, "7", now, 50, prevNext)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.confirmed, confirmed)
		})
	}
}

func TestRepository_MarkRefunded(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		refunded  bool
	}{
		{
			name: "Confirmed payment refunded",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET status = 'REFUNDED'`)).
					WithArgs(10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			refunded:  true,
		},
		{
			name: "Already refunded, no rows match",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET status = 'REFUNDED'`)).
					WithArgs(10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			refunded:  false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET status = 'REFUNDED'`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			refunded:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			refunded, err := repo.MarkRefunded(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.refunded, refunded)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful delete",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM payments`)).
					WithArgs(10).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM payments`)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
