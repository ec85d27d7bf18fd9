package subscriptionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/desbrava-tech/clubhub/internal/domain"
	"github.com/desbrava-tech/clubhub/internal/metrics"
	"github.com/desbrava-tech/clubhub/internal/pg"
)

type ClubRepo interface {
	GetByID(ctx context.Context, clubID int) (*domain.Club, error)
	UpdateEntitlements(ctx context.Context, clubID int, status string, nextBillingDate time.Time, memberLimit int) error
	CountExpired(ctx context.Context, now time.Time) (int, error)
	DemoteExpired(ctx context.Context, now time.Time) (int, error)
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]domain.Club, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, paymentID int) (*domain.Payment, error)
	FindByClubID(ctx context.Context, clubID int) ([]domain.Payment, error)
	FindPending(ctx context.Context) ([]domain.Payment, error)
	Confirm(ctx context.Context, paymentID int, confirmedBy string, confirmedAt time.Time, prevMemberLimit int, prevNextBillingDate time.Time) (bool, error)
	MarkRefunded(ctx context.Context, paymentID int) (bool, error)
	Delete(ctx context.Context, paymentID int) error
}

type MemberRepo interface {
	CountActiveByClub(ctx context.Context, clubID int) (int, error)
}

var (
	ErrClubNotFound            = errors.New("club not found")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed")
	ErrPaymentRefunded         = errors.New("payment already refunded")
	ErrInvalidPaymentType      = errors.New("invalid payment type")
	ErrInvalidMetadata         = errors.New("invalid payment metadata")
)

// Admission refusal reasons, surfaced as-is to operators.
const (
	ReasonClubNotFound         = "club not found"
	ReasonSubscriptionCanceled = "subscription canceled"
	ReasonSubscriptionOverdue  = "subscription overdue"
	ReasonMemberLimitReached   = "member limit reached"
)

const pendingPaymentTTL = 24 * time.Hour

// BillingConfig exposes the deployment billing constants to clients.
type BillingConfig struct {
	PricePerMember  float64 `json:"pricePerMember"`
	GracePeriodDays int     `json:"gracePeriodDays"`
	WarningDays     []int   `json:"warningDays"`
	SupportContact  string  `json:"supportContact"`
}

type Service struct {
	clubRepo    ClubRepo
	paymentRepo PaymentRepo
	memberRepo  MemberRepo
	txManager   pg.TXManager
	billing     BillingConfig
}

func New(clubRepo ClubRepo, paymentRepo PaymentRepo, memberRepo MemberRepo, txManager pg.TXManager, billing BillingConfig) *Service {
	return &Service{
		clubRepo:    clubRepo,
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		txManager:   txManager,
		billing:     billing,
	}
}

func (s *Service) Config() BillingConfig {
	return s.billing
}

// CalculateAmount prices a subscription: declared headcount times the
// per-member monthly price times the number of months.
func (s *Service) CalculateAmount(memberCount, months int) float64 {
	return float64(memberCount) * s.billing.PricePerMember * float64(months)
}

// GenerateDescription renders the human-facing plan label.
func (s *Service) GenerateDescription(memberCount, months int) string {
	var plan string
	switch months {
	case 1:
		plan = "Monthly"
	case 3:
		plan = "Quarterly"
	case 12:
		plan = "Annual"
	default:
		plan = fmt.Sprintf("%d months", months)
	}
	return fmt.Sprintf("%s - %d Accesses", plan, memberCount)
}

func validateMetadata(paymentType string, metadata domain.PaymentMetadata) error {
	switch paymentType {
	case domain.PaymentTypeSubscription:
		if metadata.MemberCount <= 0 || metadata.Months <= 0 {
			return ErrInvalidMetadata
		}
	case domain.PaymentTypeMemberAddition:
		if metadata.NewMemberLimit <= 0 {
			return ErrInvalidMetadata
		}
	case domain.PaymentTypeRenewal:
		if metadata.Months <= 0 {
			return ErrInvalidMetadata
		}
	default:
		return ErrInvalidPaymentType
	}
	return nil
}

// CreatePendingPayment records a payment awaiting an out-of-band PIX
// transfer. It never mutates the club.
func (s *Service) CreatePendingPayment(ctx context.Context, clubID int, paymentType string, amount float64, description string, metadata domain.PaymentMetadata) (*domain.Payment, error) {
	if err := validateMetadata(paymentType, metadata); err != nil {
		return nil, err
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}

	payment := &domain.Payment{
		ClubID:      clubID,
		Reference:   uuid.NewString(),
		Type:        paymentType,
		Amount:      amount,
		Status:      domain.PaymentPending,
		Method:      domain.PaymentMethodPix,
		Description: description,
		Metadata:    metadata,
		ExpiresAt:   time.Now().Add(pendingPaymentTTL),
	}

	payment, err = s.paymentRepo.Create(ctx, payment)
	if err != nil {
		zap.L().Error("can't create pending payment", zap.Error(err))
		return nil, err
	}
	payment.ClubName = club.Name

	zap.L().Info("pending payment created",
		zap.Int("paymentID", payment.ID),
		zap.Int("clubID", clubID),
		zap.String("type", paymentType),
		zap.Float64("amount", amount))
	return payment, nil
}

// ConfirmPayment is invoked by an operator who has verified the transfer
// out of band. Renewal time extends from the later of "now" and the
// previous expiry, so paying early never loses paid time and paying late
// never grants overlapping credit. The club's prior entitlements are
// snapshotted on the payment row for the refund path.
func (s *Service) ConfirmPayment(ctx context.Context, paymentID int, confirmedBy string) (time.Time, error) {
	var endDate time.Time

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		switch payment.Status {
		case domain.PaymentConfirmed:
			return ErrPaymentAlreadyConfirmed
		case domain.PaymentRefunded:
			return ErrPaymentRefunded
		}

		club, err := s.clubRepo.GetByID(ctx, payment.ClubID)
		if err != nil {
			return err
		}
		if club == nil {
			return ErrClubNotFound
		}

		now := time.Now()
		startDate := now
		if club.NextBillingDate.After(now) {
			startDate = club.NextBillingDate
		}
		months := payment.Metadata.Months
		if months <= 0 {
			months = 1
		}
		endDate = startDate.AddDate(0, months, 0)

		confirmed, err := s.paymentRepo.Confirm(ctx, paymentID, confirmedBy, now, club.MemberLimit, club.NextBillingDate)
		if err != nil {
			return err
		}
		if !confirmed {
			// Lost the race against a concurrent confirmation.
			return ErrPaymentAlreadyConfirmed
		}

		memberLimit := club.MemberLimit
		switch payment.Type {
		case domain.PaymentTypeMemberAddition:
			if payment.Metadata.NewMemberLimit > 0 {
				memberLimit = payment.Metadata.NewMemberLimit
			}
		case domain.PaymentTypeSubscription:
			// Price is a function of declared headcount, so confirming
			// a subscription also fixes the paid-for capacity.
			if payment.Metadata.MemberCount > 0 {
				memberLimit = payment.Metadata.MemberCount
			}
		}

		return s.clubRepo.UpdateEntitlements(ctx, club.ID, domain.SubscriptionActive, endDate, memberLimit)
	})
	if err != nil {
		return time.Time{}, err
	}

	metrics.IncPaymentConfirmed()
	zap.L().Info("payment confirmed",
		zap.Int("paymentID", paymentID),
		zap.String("confirmedBy", confirmedBy),
		zap.Time("nextBillingDate", endDate))
	return endDate, nil
}

// RefundPayment reverses a confirmation by restoring the entitlement
// snapshot captured at confirmation time. A refund of a still-pending
// payment only flips its status.
func (s *Service) RefundPayment(ctx context.Context, paymentID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		return s.refund(ctx, payment)
	})
	if err != nil {
		return err
	}

	metrics.IncPaymentRefunded()
	zap.L().Info("payment refunded", zap.Int("paymentID", paymentID))
	return nil
}

func (s *Service) refund(ctx context.Context, payment *domain.Payment) error {
	refunded, err := s.paymentRepo.MarkRefunded(ctx, payment.ID)
	if err != nil {
		return err
	}
	if !refunded {
		// Already REFUNDED. The marker is an idempotent terminal state;
		// the entitlement reversal ran with whichever refund flipped it.
		return nil
	}

	if payment.Status != domain.PaymentConfirmed {
		// Nothing was ever applied to the club.
		return nil
	}
	if payment.PrevMemberLimit == nil || payment.PrevNextBillingDate == nil {
		zap.L().Warn("confirmed payment without entitlement snapshot", zap.Int("paymentID", payment.ID))
		return nil
	}

	memberLimit := *payment.PrevMemberLimit
	if memberLimit < 1 {
		memberLimit = 1
	}
	status := domain.SubscriptionActive
	if payment.PrevNextBillingDate.Before(time.Now()) {
		status = domain.SubscriptionOverdue
	}

	return s.clubRepo.UpdateEntitlements(ctx, payment.ClubID, status, *payment.PrevNextBillingDate, memberLimit)
}

// DeletePayment hard-deletes a payment record. A confirmed payment is
// refunded first so the club never keeps entitlements it no longer paid
// for.
func (s *Service) DeletePayment(ctx context.Context, paymentID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return ErrPaymentNotFound
		}
		if payment.Status == domain.PaymentConfirmed {
			if err := s.refund(ctx, payment); err != nil {
				return err
			}
		}
		return s.paymentRepo.Delete(ctx, paymentID)
	})
	if err != nil {
		return err
	}

	zap.L().Info("payment deleted", zap.Int("paymentID", paymentID))
	return nil
}

func (s *Service) GetClubPayments(ctx context.Context, clubID int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByClubID(ctx, clubID)
	if err != nil {
		zap.L().Error("failed to get club payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

func (s *Service) GetPendingPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindPending(ctx)
	if err != nil {
		zap.L().Error("failed to get pending payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

// CheckExpiredSubscriptions demotes every ACTIVE club past its grace
// window to OVERDUE. Clubs inside grace stay ACTIVE; grace is derived on
// read, never persisted.
func (s *Service) CheckExpiredSubscriptions(ctx context.Context) (*domain.SweepResult, error) {
	now := time.Now()

	checked, err := s.clubRepo.CountExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	updated, err := s.clubRepo.DemoteExpired(ctx, now)
	if err != nil {
		return nil, err
	}

	metrics.AddSweepDemoted(updated)
	zap.L().Info("expiry sweep finished", zap.Int("checked", checked), zap.Int("updated", updated))
	return &domain.SweepResult{Checked: checked, Updated: updated}, nil
}

// GetClubSubscription builds the status view, deriving the grace window
// from the billing date at read time.
func (s *Service) GetClubSubscription(ctx context.Context, clubID int) (*domain.SubscriptionView, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, ErrClubNotFound
	}

	count, err := s.memberRepo.CountActiveByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	graceEnd := club.NextBillingDate.AddDate(0, 0, club.GracePeriodDays)

	view := &domain.SubscriptionView{
		ClubID:          club.ID,
		ClubName:        club.Name,
		Status:          club.SubscriptionStatus,
		NextBillingDate: club.NextBillingDate,
		GracePeriodDays: club.GracePeriodDays,
		IsInGracePeriod: club.SubscriptionStatus == domain.SubscriptionActive &&
			now.After(club.NextBillingDate) && !now.After(graceEnd),
		MemberCount: count,
		MemberLimit: club.MemberLimit,
	}
	if days := int(time.Until(graceEnd).Hours() / 24); days > 0 {
		view.DaysUntilOverdue = days
	}
	return view, nil
}

// CanAddMember gates new member creation. Refusal reasons are ordered by
// actionability: a canceled club is reported before its headcount is
// even considered.
func (s *Service) CanAddMember(ctx context.Context, clubID int) (*domain.CanAddMemberResult, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return &domain.CanAddMemberResult{CanAdd: false, Reason: ReasonClubNotFound}, nil
	}

	count, err := s.memberRepo.CountActiveByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	result := &domain.CanAddMemberResult{
		CurrentCount: count,
		MemberLimit:  club.MemberLimit,
	}
	switch {
	case club.SubscriptionStatus == domain.SubscriptionCanceled:
		result.Reason = ReasonSubscriptionCanceled
	case club.SubscriptionStatus == domain.SubscriptionOverdue:
		result.Reason = ReasonSubscriptionOverdue
	case count >= club.MemberLimit:
		result.Reason = ReasonMemberLimitReached
	default:
		result.CanAdd = true
	}
	return result, nil
}
