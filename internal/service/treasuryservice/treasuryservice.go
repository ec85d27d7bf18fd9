package treasuryservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/desbrava-tech/clubhub/internal/domain"
	"github.com/desbrava-tech/clubhub/internal/pg"
)

type TransactionRepo interface {
	Create(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error)
	CreateBatch(ctx context.Context, trs []domain.Transaction) ([]domain.Transaction, error)
	GetByID(ctx context.Context, transactionID int) (*domain.Transaction, error)
	FindByClubID(ctx context.Context, clubID int) ([]domain.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID int, from, to string, paymentDate *time.Time) (bool, error)
	Delete(ctx context.Context, transactionID int) error
}

type MemberRepo interface {
	AddPoints(ctx context.Context, memberID, delta int) error
}

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidTransactionType  = errors.New("invalid transaction type")
	ErrInvalidTransactionState = errors.New("invalid transaction state")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrNoBeneficiaries         = errors.New("no beneficiaries given")
)

type Service struct {
	transactionRepo TransactionRepo
	memberRepo      MemberRepo
	txManager       pg.TXManager
}

func New(transactionRepo TransactionRepo, memberRepo MemberRepo, txManager pg.TXManager) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		memberRepo:      memberRepo,
		txManager:       txManager,
	}
}

func validate(tr *domain.Transaction) error {
	if tr.Type != domain.TransactionIncome && tr.Type != domain.TransactionExpense {
		return ErrInvalidTransactionType
	}
	if tr.Amount <= 0 {
		return ErrInvalidAmount
	}
	switch tr.Status {
	case "":
		tr.Status = domain.TransactionPending
	case domain.TransactionPending, domain.TransactionWaitingApproval, domain.TransactionCompleted:
	default:
		return ErrInvalidTransactionState
	}
	if tr.Date.IsZero() {
		tr.Date = time.Now()
	}
	return nil
}

// CreateTransaction records a treasury event. Callers asserting the
// money was already received create it COMPLETED directly, which grants
// any points immediately.
func (s *Service) CreateTransaction(ctx context.Context, tr domain.Transaction) (*domain.Transaction, error) {
	if err := validate(&tr); err != nil {
		return nil, err
	}

	var created *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		if tr.Status == domain.TransactionCompleted && tr.PaymentDate == nil {
			now := time.Now()
			tr.PaymentDate = &now
		}
		created, err = s.transactionRepo.Create(ctx, &tr)
		if err != nil {
			return err
		}
		if created.Status == domain.TransactionCompleted {
			return s.grantPoints(ctx, created)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}

	zap.L().Info("transaction created",
		zap.Int("transactionID", created.ID),
		zap.Int("clubID", created.ClubID),
		zap.String("type", created.Type),
		zap.String("status", created.Status))
	return created, nil
}

// CreateBulkTransactions fans out one transaction per beneficiary for a
// single shared economic event. Each row is independent afterward. A
// COMPLETED base grants each beneficiary's points on creation, same as
// the single-create path.
func (s *Service) CreateBulkTransactions(ctx context.Context, base domain.Transaction, payerIDs []int) ([]domain.Transaction, error) {
	if err := validate(&base); err != nil {
		return nil, err
	}
	if len(payerIDs) == 0 {
		return nil, ErrNoBeneficiaries
	}
	if base.Status == domain.TransactionCompleted && base.PaymentDate == nil {
		now := time.Now()
		base.PaymentDate = &now
	}

	trs := make([]domain.Transaction, len(payerIDs))
	for i, payerID := range payerIDs {
		payerID := payerID
		trs[i] = base
		trs[i].PayerID = &payerID
	}

	var created []domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.transactionRepo.CreateBatch(ctx, trs)
		if err != nil {
			return err
		}
		for i := range created {
			if created[i].Status == domain.TransactionCompleted {
				if err := s.grantPoints(ctx, &created[i]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create bulk transactions", zap.Error(err))
		return nil, err
	}

	zap.L().Info("bulk transactions created",
		zap.Int("clubID", base.ClubID),
		zap.Int("count", len(created)))
	return created, nil
}

// SettleTransaction moves PENDING to COMPLETED and records the payment
// date. The conditional status update is the guard: a transaction
// settled once cannot be re-settled, and points are granted exactly
// once.
func (s *Service) SettleTransaction(ctx context.Context, transactionID int, paymentDate time.Time) error {
	return s.transition(ctx, transactionID, domain.TransactionPending, domain.TransactionCompleted, &paymentDate)
}

// ApproveTransaction completes a self-reported payment after staff have
// verified the uploaded proof.
func (s *Service) ApproveTransaction(ctx context.Context, transactionID int) error {
	now := time.Now()
	return s.transition(ctx, transactionID, domain.TransactionWaitingApproval, domain.TransactionCompleted, &now)
}

// RejectTransaction cancels a self-reported payment; resubmission means
// creating a new transaction.
func (s *Service) RejectTransaction(ctx context.Context, transactionID int) error {
	return s.transition(ctx, transactionID, domain.TransactionWaitingApproval, domain.TransactionCanceled, nil)
}

func (s *Service) transition(ctx context.Context, transactionID int, from, to string, paymentDate *time.Time) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tr, err := s.transactionRepo.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if tr == nil {
			return ErrTransactionNotFound
		}

		moved, err := s.transactionRepo.UpdateStatus(ctx, transactionID, from, to, paymentDate)
		if err != nil {
			return err
		}
		if !moved {
			return ErrInvalidTransactionState
		}

		if to == domain.TransactionCompleted {
			return s.grantPoints(ctx, tr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("transaction status changed",
		zap.Int("transactionID", transactionID),
		zap.String("from", from),
		zap.String("to", to))
	return nil
}

func (s *Service) grantPoints(ctx context.Context, tr *domain.Transaction) error {
	if tr.Points == 0 || tr.PayerID == nil {
		return nil
	}
	if err := s.memberRepo.AddPoints(ctx, *tr.PayerID, tr.Points); err != nil {
		return err
	}
	zap.L().Info("points granted",
		zap.Int("memberID", *tr.PayerID),
		zap.Int("points", tr.Points))
	return nil
}

// DeleteTransaction removes a row. A completed transaction first has its
// point grant reversed, mirroring the refund discipline on payments.
func (s *Service) DeleteTransaction(ctx context.Context, transactionID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tr, err := s.transactionRepo.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if tr == nil {
			return ErrTransactionNotFound
		}

		if tr.Status == domain.TransactionCompleted && tr.Points != 0 && tr.PayerID != nil {
			if err := s.memberRepo.AddPoints(ctx, *tr.PayerID, -tr.Points); err != nil {
				return err
			}
		}
		return s.transactionRepo.Delete(ctx, transactionID)
	})
	if err != nil {
		return err
	}

	zap.L().Info("transaction deleted", zap.Int("transactionID", transactionID))
	return nil
}

func (s *Service) GetClubTransactions(ctx context.Context, clubID int) ([]domain.Transaction, error) {
	trs, err := s.transactionRepo.FindByClubID(ctx, clubID)
	if err != nil {
		zap.L().Error("failed to get club transactions", zap.Error(err))
		return nil, err
	}
	return trs, nil
}
