package reportservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/desbrava-tech/clubhub/internal/domain"
)

type ClubRepo interface {
	GetByID(ctx context.Context, clubID int) (*domain.Club, error)
}

type MemberRepo interface {
	FindActiveByClub(ctx context.Context, clubID int) ([]domain.Member, error)
}

type TransactionRepo interface {
	FindByClubID(ctx context.Context, clubID int) ([]domain.Transaction, error)
}

var ErrClubNotFound = errors.New("club not found")

// Age brackets used across demographic and point rollups.
const (
	BracketChild string = "0-9"
	BracketTeen  string = "10-15"
	BracketAdult string = "16+"
)

type DemographicsReport struct {
	ClubID       int            `json:"clubId"`
	TotalMembers int            `json:"totalMembers"`
	ByGender     map[string]int `json:"byGender"`
	ByAgeBracket map[string]int `json:"byAgeBracket"`
	ByRole       map[string]int `json:"byRole"`
}

type FinancialReport struct {
	ClubID         int                `json:"clubId"`
	ClubName       string             `json:"clubName"`
	TotalIncome    float64            `json:"totalIncome"`
	TotalExpense   float64            `json:"totalExpense"`
	Balance        float64            `json:"balance"`
	PendingIncome  float64            `json:"pendingIncome"`
	PendingExpense float64            `json:"pendingExpense"`
	ByCategory     map[string]float64 `json:"byCategory"`
	ByStatus       map[string]int     `json:"byStatus"`
}

type PointsReport struct {
	ClubID       int            `json:"clubId"`
	TotalPoints  int            `json:"totalPoints"`
	ByAgeBracket map[string]int `json:"byAgeBracket"`
}

type Service struct {
	clubRepo        ClubRepo
	memberRepo      MemberRepo
	transactionRepo TransactionRepo
}

func New(clubRepo ClubRepo, memberRepo MemberRepo, transactionRepo TransactionRepo) *Service {
	return &Service{
		clubRepo:        clubRepo,
		memberRepo:      memberRepo,
		transactionRepo: transactionRepo,
	}
}

func ageBracket(birthDate time.Time, now time.Time) string {
	age := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		age--
	}
	switch {
	case age < 10:
		return BracketChild
	case age <= 15:
		return BracketTeen
	default:
		return BracketAdult
	}
}

func (s *Service) Demographics(ctx context.Context, clubID int) (*DemographicsReport, error) {
	members, err := s.members(ctx, clubID)
	if err != nil {
		return nil, err
	}

	report := &DemographicsReport{
		ClubID:       clubID,
		TotalMembers: len(members),
		ByGender:     make(map[string]int),
		ByAgeBracket: make(map[string]int),
		ByRole:       make(map[string]int),
	}
	now := time.Now()
	for _, member := range members {
		report.ByGender[member.Gender]++
		report.ByAgeBracket[ageBracket(member.BirthDate, now)]++
		report.ByRole[member.Role]++
	}
	return report, nil
}

// Financial sums completed income and expense rows; pending rows are
// reported separately so totals always equal the sum of underlying rows.
func (s *Service) Financial(ctx context.Context, clubID int) (*FinancialReport, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}

	trs, err := s.transactionRepo.FindByClubID(ctx, clubID)
	if err != nil {
		zap.L().Error("failed to get transactions for report", zap.Error(err))
		return nil, err
	}

	report := &FinancialReport{
		ClubID:     clubID,
		ClubName:   club.Name,
		ByCategory: make(map[string]float64),
		ByStatus:   make(map[string]int),
	}
	for _, tr := range trs {
		report.ByStatus[tr.Status]++

		switch tr.Status {
		case domain.TransactionCompleted:
			switch tr.Type {
			case domain.TransactionIncome:
				report.TotalIncome += tr.Amount
				report.ByCategory[tr.Category] += tr.Amount
			case domain.TransactionExpense:
				report.TotalExpense += tr.Amount
				report.ByCategory[tr.Category] -= tr.Amount
			}
		case domain.TransactionPending, domain.TransactionWaitingApproval:
			switch tr.Type {
			case domain.TransactionIncome:
				report.PendingIncome += tr.Amount
			case domain.TransactionExpense:
				report.PendingExpense += tr.Amount
			}
		}
	}
	report.Balance = report.TotalIncome - report.TotalExpense
	return report, nil
}

func (s *Service) Points(ctx context.Context, clubID int) (*PointsReport, error) {
	members, err := s.members(ctx, clubID)
	if err != nil {
		return nil, err
	}

	report := &PointsReport{
		ClubID:       clubID,
		ByAgeBracket: make(map[string]int),
	}
	now := time.Now()
	for _, member := range members {
		report.TotalPoints += member.Points
		report.ByAgeBracket[ageBracket(member.BirthDate, now)] += member.Points
	}
	return report, nil
}

func (s *Service) members(ctx context.Context, clubID int) ([]domain.Member, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}

	members, err := s.memberRepo.FindActiveByClub(ctx, clubID)
	if err != nil {
		zap.L().Error("failed to get members for report", zap.Error(err))
		return nil, err
	}
	return members, nil
}
