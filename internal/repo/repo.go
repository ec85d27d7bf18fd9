package repo

import (
	"github.com/desbrava-tech/clubhub/internal/pg"
	clubrepo "github.com/desbrava-tech/clubhub/internal/repo/club-repo"
	memberrepo "github.com/desbrava-tech/clubhub/internal/repo/member-repo"
	paymentrepo "github.com/desbrava-tech/clubhub/internal/repo/payment-repo"
	transactionrepo "github.com/desbrava-tech/clubhub/internal/repo/transaction-repo"
)

type Repositories struct {
	ClubRepo        *clubrepo.Repository
	PaymentRepo     *paymentrepo.Repository
	TransactionRepo *transactionrepo.Repository
	MemberRepo      *memberrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		ClubRepo:        clubrepo.New(conn),
		PaymentRepo:     paymentrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn, txManager),
		MemberRepo:      memberrepo.New(conn),
	}
}
