package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/desbrava-tech/clubhub/internal/domain"
	"github.com/desbrava-tech/clubhub/internal/dto"
	subscriptionservice "github.com/desbrava-tech/clubhub/internal/service/subscriptionservice"
	"github.com/desbrava-tech/clubhub/pkg/auth"
	"github.com/desbrava-tech/clubhub/pkg/utils"
)

type Service interface {
	CalculateAmount(memberCount, months int) float64
	GenerateDescription(memberCount, months int) string
	Config() subscriptionservice.BillingConfig
	CreatePendingPayment(ctx context.Context, clubID int, paymentType string, amount float64, description string, metadata domain.PaymentMetadata) (*domain.Payment, error)
	ConfirmPayment(ctx context.Context, paymentID int, confirmedBy string) (time.Time, error)
	RefundPayment(ctx context.Context, paymentID int) error
	DeletePayment(ctx context.Context, paymentID int) error
	GetClubPayments(ctx context.Context, clubID int) ([]domain.Payment, error)
	GetPendingPayments(ctx context.Context) ([]domain.Payment, error)
	GetClubSubscription(ctx context.Context, clubID int) (*domain.SubscriptionView, error)
	CanAddMember(ctx context.Context, clubID int) (*domain.CanAddMemberResult, error)
	CheckExpiredSubscriptions(ctx context.Context) (*domain.SweepResult, error)
}

type SubscriptionHandler struct {
	subscriptionService Service
}

func New(subscriptionService Service) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// CanAddMember godoc
//
//	@Summary		Check whether the club can admit a new member
//	@Description	Compares the live member count against the plan limit and the subscription status.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubID	path		int	true	"Club ID"
//	@Success		200		{object}	domain.CanAddMemberResult
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/can-add-member/{clubID} [get]
func (h *SubscriptionHandler) CanAddMember(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid club id")
		return
	}

	result, err := h.subscriptionService.CanAddMember(r.Context(), clubID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GetClubSubscription godoc
//
//	@Summary		Get the subscription status view for a club
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubID	path		int	true	"Club ID"
//	@Success		200		{object}	domain.SubscriptionView
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		404		{object}	utils.Response	"Club not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/club/{clubID} [get]
func (h *SubscriptionHandler) GetClubSubscription(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid club id")
		return
	}

	view, err := h.subscriptionService.GetClubSubscription(r.Context(), clubID)
	if err != nil {
		if errors.Is(err, subscriptionservice.ErrClubNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// GetClubPayments godoc
//
//	@Summary		List a club's payments
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubID	path		int	true	"Club ID"
//	@Success		200		{array}		dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/payments/club/{clubID} [get]
func (h *SubscriptionHandler) GetClubPayments(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid club id")
		return
	}

	payments, err := h.subscriptionService.GetClubPayments(r.Context(), clubID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTOs(payments))
}

// GetPendingPayments godoc
//
//	@Summary		List all payments awaiting confirmation
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PaymentResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/payments/pending [get]
func (h *SubscriptionHandler) GetPendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.subscriptionService.GetPendingPayments(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPaymentDTOs(payments))
}

// CreatePayment godoc
//
//	@Summary		Create a pending payment
//	@Description	Creates a payment awaiting a manual PIX transfer. When the amount is omitted it is computed from the declared headcount and months.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Payment payload"
//	@Success		201		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Club not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/payments [post]
func (h *SubscriptionHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// A director may only create payments for their own club.
	if auth.RoleFromContext(r.Context()) != auth.RoleMaster && auth.ClubIDFromContext(r.Context()) != req.ClubID {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	metadata := domain.PaymentMetadata{
		MemberCount:    req.Metadata.MemberCount,
		Months:         req.Metadata.Months,
		BillingCycle:   req.Metadata.BillingCycle,
		NewMemberLimit: req.Metadata.NewMemberLimit,
	}

	amount := req.Amount
	description := req.Description
	if amount == 0 && metadata.MemberCount > 0 && metadata.Months > 0 {
		amount = h.subscriptionService.CalculateAmount(metadata.MemberCount, metadata.Months)
	}
	if description == "" && metadata.MemberCount > 0 && metadata.Months > 0 {
		description = h.subscriptionService.GenerateDescription(metadata.MemberCount, metadata.Months)
	}

	payment, err := h.subscriptionService.CreatePendingPayment(r.Context(), req.ClubID, req.Type, amount, description, metadata)
	if err != nil {
		switch {
		case errors.Is(err, subscriptionservice.ErrClubNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, subscriptionservice.ErrInvalidPaymentType), errors.Is(err, subscriptionservice.ErrInvalidMetadata):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPaymentDTO(*payment))
}

// ConfirmPayment godoc
//
//	@Summary		Confirm a payment
//	@Description	Marks a payment as paid after the operator verified the transfer out of band, and applies the entitlements to the club.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{object}	dto.ConfirmPaymentResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid payment id"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		409	{object}	utils.Response	"Payment already confirmed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/payments/{id}/confirm [patch]
func (h *SubscriptionHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	nextBillingDate, err := h.subscriptionService.ConfirmPayment(r.Context(), paymentID, strconv.Itoa(userID))
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmPaymentResponseDTO{NextBillingDate: nextBillingDate})
}

// RefundPayment godoc
//
//	@Summary		Refund a payment
//	@Description	Restores the club entitlements captured when the payment was confirmed and marks the payment REFUNDED.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{string}	string	"refunded"
//	@Failure		400	{object}	utils.Response	"Invalid payment id"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		409	{object}	utils.Response	"Payment already refunded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/payments/{id}/refund [patch]
func (h *SubscriptionHandler) RefundPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	if err := h.subscriptionService.RefundPayment(r.Context(), paymentID); err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "refunded")
}

// DeletePayment godoc
//
//	@Summary		Delete a payment
//	@Description	Hard-deletes a payment record; a confirmed payment is refunded first.
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Payment ID"
//	@Success		200	{string}	string	"deleted"
//	@Failure		400	{object}	utils.Response	"Invalid payment id"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/payments/{id} [delete]
func (h *SubscriptionHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	if err := h.subscriptionService.DeletePayment(r.Context(), paymentID); err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "deleted")
}

// GetConfig godoc
//
//	@Summary		Expose the deployment billing constants
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BillingConfigResponseDTO
//	@Router			/api/subscriptions/config [get]
func (h *SubscriptionHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.subscriptionService.Config()
	utils.RespondWithJSON(w, http.StatusOK, dto.BillingConfigResponseDTO{
		PricePerMember:  cfg.PricePerMember,
		GracePeriodDays: cfg.GracePeriodDays,
		WarningDays:     cfg.WarningDays,
		SupportContact:  cfg.SupportContact,
	})
}

// CheckExpired godoc
//
//	@Summary		Run the subscription expiry sweep
//	@Tags			Subscriptions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SweepResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/subscriptions/check-expired [post]
func (h *SubscriptionHandler) CheckExpired(w http.ResponseWriter, r *http.Request) {
	result, err := h.subscriptionService.CheckExpiredSubscriptions(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SweepResponseDTO{Checked: result.Checked, Updated: result.Updated})
}

func respondPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, subscriptionservice.ErrPaymentNotFound), errors.Is(err, subscriptionservice.ErrClubNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, subscriptionservice.ErrPaymentAlreadyConfirmed), errors.Is(err, subscriptionservice.ErrPaymentRefunded):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toPaymentDTO(payment domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:          payment.ID,
		ClubID:      payment.ClubID,
		ClubName:    payment.ClubName,
		Reference:   payment.Reference,
		Type:        payment.Type,
		Amount:      payment.Amount,
		Status:      payment.Status,
		Method:      payment.Method,
		Description: payment.Description,
		Metadata: dto.PaymentMetadataDTO{
			MemberCount:    payment.Metadata.MemberCount,
			Months:         payment.Metadata.Months,
			BillingCycle:   payment.Metadata.BillingCycle,
			NewMemberLimit: payment.Metadata.NewMemberLimit,
		},
		ExpiresAt:   payment.ExpiresAt,
		ConfirmedAt: payment.ConfirmedAt,
		ConfirmedBy: payment.ConfirmedBy,
		CreatedAt:   payment.CreatedAt,
	}
}

func toPaymentDTOs(payments []domain.Payment) []dto.PaymentResponseDTO {
	response := make([]dto.PaymentResponseDTO, len(payments))
	for i, payment := range payments {
		response[i] = toPaymentDTO(payment)
	}
	return response
}
