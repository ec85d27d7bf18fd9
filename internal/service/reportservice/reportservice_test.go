package reportservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/desbrava-tech/clubhub/internal/domain"
)

func NewServiceMock(t *testing.T) (*Service, *MockClubRepo, *MockMemberRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	clubRepo := NewMockClubRepo(ctrl)
	memberRepo := NewMockMemberRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	service := New(clubRepo, memberRepo, transactionRepo)
	defer ctrl.Finish()

	return service, clubRepo, memberRepo, transactionRepo
}

func birthDate(age int) time.Time {
	return time.Now().AddDate(-age, 0, -1)
}

func TestAgeBracket(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate time.Time
		expected  string
	}{
		{name: "Nine year old is a child", birthDate: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), expected: BracketChild},
		{name: "Ten year old is a teen", birthDate: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), expected: BracketTeen},
		{name: "Fifteen year old is a teen", birthDate: time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), expected: BracketTeen},
		{name: "Sixteen year old is an adult", birthDate: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), expected: BracketAdult},
		{name: "Birthday later this year not yet counted", birthDate: time.Date(2016, 12, 1, 0, 0, 0, 0, time.UTC), expected: BracketChild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ageBracket(tt.birthDate, now))
		})
	}
}

func TestService_Demographics(t *testing.T) {
	ctx := context.Background()
	club := &domain.Club{ID: 1, Name: "Clube A"}

	tests := []struct {
		name        string
		prepareMock func(clubRepo *MockClubRepo, memberRepo *MockMemberRepo)
		expectedErr error
		check       func(t *testing.T, report *DemographicsReport)
	}{
		{
			name: "Counts split by gender, bracket and role",
			prepareMock: func(clubRepo *MockClubRepo, memberRepo *MockMemberRepo) {
				members := []domain.Member{
					{ID: 1, Gender: "F", Role: "MEMBER", BirthDate: birthDate(12)},
					{ID: 2, Gender: "M", Role: "MEMBER", BirthDate: birthDate(8)},
					{ID: 3, Gender: "F", Role: "DIRECTOR", BirthDate: birthDate(35)},
				}
				clubRepo.EXPECT().GetByID(ctx, 1).Return(club, nil)
				memberRepo.EXPECT().FindActiveByClub(ctx, 1).Return(members, nil)
			},
			check: func(t *testing.T, report *DemographicsReport) {
				assert.Equal(t, 3, report.TotalMembers)
				assert.Equal(t, 2, report.ByGender["F"])
				assert.Equal(t, 1, report.ByGender["M"])
				assert.Equal(t, 1, report.ByAgeBracket[BracketChild])
				assert.Equal(t, 1, report.ByAgeBracket[BracketTeen])
				assert.Equal(t, 1, report.ByAgeBracket[BracketAdult])
				assert.Equal(t, 2, report.ByRole["MEMBER"])
			},
		},
		{
			name: "Empty club yields zeroed report",
			prepareMock: func(clubRepo *MockClubRepo, memberRepo *MockMemberRepo) {
				clubRepo.EXPECT().GetByID(ctx, 1).Return(club, nil)
				memberRepo.EXPECT().FindActiveByClub(ctx, 1).Return(nil, nil)
			},
			check: func(t *testing.T, report *DemographicsReport) {
				assert.Equal(t, 0, report.TotalMembers)
				assert.Empty(t, report.ByGender)
			},
		},
		{
			name: "Club not found",
			prepareMock: func(clubRepo *MockClubRepo, memberRepo *MockMemberRepo) {
				clubRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)
			},
			expectedErr: ErrClubNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, clubRepo, memberRepo, _ := NewServiceMock(t)
			tt.prepareMock(clubRepo, memberRepo)

			report, err := service.Demographics(ctx, 1)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				tt.check(t, report)
			}
		})
	}
}

func TestService_Financial(t *testing.T) {
	ctx := context.Background()
	club := &domain.Club{ID: 1, Name: "Clube A"}

	tests := []struct {
		name        string
		prepareMock func(clubRepo *MockClubRepo, transactionRepo *MockTransactionRepo)
		expectedErr error
		check       func(t *testing.T, report *FinancialReport)
	}{
		{
			name: "Totals equal the sum of completed rows",
			prepareMock: func(clubRepo *MockClubRepo, transactionRepo *MockTransactionRepo) {
				trs := []domain.Transaction{
					{Type: domain.TransactionIncome, Amount: 150.0, Category: "mensalidade", Status: domain.TransactionCompleted},
					{Type: domain.TransactionIncome, Amount: 50.0, Category: "doacao", Status: domain.TransactionCompleted},
					{Type: domain.TransactionExpense, Amount: 80.0, Category: "equipamento", Status: domain.TransactionCompleted},
					{Type: domain.TransactionIncome, Amount: 25.0, Category: "acampamento", Status: domain.TransactionPending},
					{Type: domain.TransactionExpense, Amount: 40.0, Category: "transporte", Status: domain.TransactionWaitingApproval},
					{Type: domain.TransactionIncome, Amount: 10.0, Category: "doacao", Status: domain.TransactionCanceled},
				}
				clubRepo.EXPECT().GetByID(ctx, 1).Return(club, nil)
				transactionRepo.EXPECT().FindByClubID(ctx, 1).Return(trs, nil)
			},
			check: func(t *testing.T, report *FinancialReport) {
				assert.Equal(t, "Clube A", report.ClubName)
				assert.Equal(t, 200.0, report.TotalIncome)
				assert.Equal(t, 80.0, report.TotalExpense)
				assert.Equal(t, 120.0, report.Balance)
				assert.Equal(t, 25.0, report.PendingIncome)
				assert.Equal(t, 40.0, report.PendingExpense)
				assert.Equal(t, 150.0, report.ByCategory["mensalidade"])
				assert.Equal(t, -80.0, report.ByCategory["equipamento"])
				assert.Equal(t, 3, report.ByStatus[domain.TransactionCompleted])
				assert.Equal(t, 1, report.ByStatus[domain.TransactionCanceled])
			},
		},
		{
			name: "Club not found",
			prepareMock: func(clubRepo *MockClubRepo, transactionRepo *MockTransactionRepo) {
				clubRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)
			},
			expectedErr: ErrClubNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func(clubRepo *MockClubRepo, transactionRepo *MockTransactionRepo) {
				clubRepo.EXPECT().GetByID(ctx, 1).Return(club, nil)
				transactionRepo.EXPECT().FindByClubID(ctx, 1).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, clubRepo, _, transactionRepo := NewServiceMock(t)
			tt.prepareMock(clubRepo, transactionRepo)

			report, err := service.Financial(ctx, 1)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Nil(t, report)
			} else {
				assert.NoError(t, err)
				tt.check(t, report)
			}
		})
	}
}

func TestService_Points(t *testing.T) {
	ctx := context.Background()
	club := &domain.Club{ID: 1, Name: "Clube A"}

	t.Run("Point totals split by bracket", func(t *testing.T) {
		service, clubRepo, memberRepo, _ := NewServiceMock(t)

		members := []domain.Member{
			{ID: 1, Points: 40, BirthDate: birthDate(12)},
			{ID: 2, Points: 25, BirthDate: birthDate(13)},
			{ID: 3, Points: 10, BirthDate: birthDate(8)},
		}
		clubRepo.EXPECT().GetByID(ctx, 1).Return(club, nil)
		memberRepo.EXPECT().FindActiveByClub(ctx, 1).Return(members, nil)

		report, err := service.Points(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, 75, report.TotalPoints-report.ByAgeBracket[BracketChild])
		assert.Equal(t, 75, report.ByAgeBracket[BracketTeen])
		assert.Equal(t, 10, report.ByAgeBracket[BracketChild])
		assert.Equal(t, 75+10, report.TotalPoints)
	})

	t.Run("Club not found", func(t *testing.T) {
		service, clubRepo, _, _ := NewServiceMock(t)
		clubRepo.EXPECT().GetByID(ctx, 1).Return(nil, nil)

		report, err := service.Points(ctx, 1)

		assert.ErrorIs(t, err, ErrClubNotFound)
		assert.Nil(t, report)
	})
}
