package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/desbrava-tech/clubhub/docs"
	reporthandlers "github.com/desbrava-tech/clubhub/internal/handlers/report"
	subscriptionhandlers "github.com/desbrava-tech/clubhub/internal/handlers/subscription"
	treasuryhandlers "github.com/desbrava-tech/clubhub/internal/handlers/treasury"
	"github.com/desbrava-tech/clubhub/internal/service"
	"github.com/desbrava-tech/clubhub/pkg/auth"
	"github.com/desbrava-tech/clubhub/pkg/export"
)

type SubscriptionHandler interface {
	CanAddMember(w http.ResponseWriter, r *http.Request)
	GetClubSubscription(w http.ResponseWriter, r *http.Request)
	GetClubPayments(w http.ResponseWriter, r *http.Request)
	GetPendingPayments(w http.ResponseWriter, r *http.Request)
	CreatePayment(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	RefundPayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	CheckExpired(w http.ResponseWriter, r *http.Request)
}

type TreasuryHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	CreateBulkTransactions(w http.ResponseWriter, r *http.Request)
	GetClubTransactions(w http.ResponseWriter, r *http.Request)
	SettleTransaction(w http.ResponseWriter, r *http.Request)
	ApproveTransaction(w http.ResponseWriter, r *http.Request)
	RejectTransaction(w http.ResponseWriter, r *http.Request)
	DeleteTransaction(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Demographics(w http.ResponseWriter, r *http.Request)
	Financial(w http.ResponseWriter, r *http.Request)
	ExportFinancial(w http.ResponseWriter, r *http.Request)
	Points(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SubscriptionHandler SubscriptionHandler
	TreasuryHandler     TreasuryHandler
	ReportHandler       ReportHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		SubscriptionHandler: subscriptionhandlers.New(s.SubscriptionService),
		TreasuryHandler:     treasuryhandlers.New(s.TreasuryService),
		ReportHandler:       reporthandlers.New(s.ReportService, export.BuildFinancialXLSX),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService auth.JWTServiceInterface) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(jwtService))

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/can-add-member/{clubID}", h.SubscriptionHandler.CanAddMember)
			r.Get("/club/{clubID}", h.SubscriptionHandler.GetClubSubscription)
			r.Get("/config", h.SubscriptionHandler.GetConfig)
			r.With(auth.RequireRole(auth.RoleMaster)).Post("/check-expired", h.SubscriptionHandler.CheckExpired)

			r.Route("/payments", func(r chi.Router) {
				r.Get("/club/{clubID}", h.SubscriptionHandler.GetClubPayments)
				r.With(auth.RequireRole(auth.RoleMaster, auth.RoleDirector)).Post("/", h.SubscriptionHandler.CreatePayment)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(auth.RoleMaster))
					r.Get("/pending", h.SubscriptionHandler.GetPendingPayments)
					r.Patch("/{id}/confirm", h.SubscriptionHandler.ConfirmPayment)
					r.Patch("/{id}/refund", h.SubscriptionHandler.RefundPayment)
					r.Delete("/{id}", h.SubscriptionHandler.DeletePayment)
				})
			})
		})

		r.Route("/treasury/transactions", func(r chi.Router) {
			r.Get("/club/{clubID}", h.TreasuryHandler.GetClubTransactions)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(auth.RoleMaster, auth.RoleDirector))
				r.Post("/", h.TreasuryHandler.CreateTransaction)
				r.Post("/bulk", h.TreasuryHandler.CreateBulkTransactions)
				r.Patch("/{id}/settle", h.TreasuryHandler.SettleTransaction)
				r.Patch("/{id}/approve", h.TreasuryHandler.ApproveTransaction)
				r.Patch("/{id}/reject", h.TreasuryHandler.RejectTransaction)
				r.Delete("/{id}", h.TreasuryHandler.DeleteTransaction)
			})
		})

		r.Route("/reports/{clubID}", func(r chi.Router) {
			r.Get("/demographics", h.ReportHandler.Demographics)
			r.Get("/financial", h.ReportHandler.Financial)
			r.With(auth.RequireRole(auth.RoleMaster, auth.RoleDirector)).Get("/financial/export", h.ReportHandler.ExportFinancial)
			r.Get("/points", h.ReportHandler.Points)
		})
	})

	return r
}
