package treasury

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
	treasuryservice "github.com/desbrava-tech/clubhub/internal/service/treasuryservice"
	"github.com/desbrava-tech/clubhub/pkg/utils"
)

type Service interface {
	CreateTransaction(ctx context.Context, tr domain.Transaction) (*domain.Transaction, error)
	CreateBulkTransactions(ctx context.Context, base domain.Transaction, payerIDs []int) ([]domain.Transaction, error)
	SettleTransaction(ctx context.Context, transactionID int, paymentDate time.Time) error
	ApproveTransaction(ctx context.Context, transactionID int) error
	RejectTransaction(ctx context.Context, transactionID int) error
	DeleteTransaction(ctx context.Context, transactionID int) error
	GetClubTransactions(ctx context.Context, clubID int) ([]domain.Transaction, error)
}

type TreasuryHandler struct {
	treasuryService Service
}

func New(treasuryService Service) *TreasuryHandler {
	return &TreasuryHandler{
		treasuryService: treasuryService,
	}
}

// CreateTransaction godoc
//
//	@Summary		Record a treasury transaction
//	@Tags			Treasury
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTransactionRequestDTO	true	"Transaction payload"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/treasury/transactions [post]
func (h *TreasuryHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.treasuryService.CreateTransaction(r.Context(), fromRequestDTO(req))
	if err != nil {
		respondTreasuryError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toTransactionDTO(*created))
}

// CreateBulkTransactions godoc
//
//	@Summary		Record one transaction per beneficiary for a shared economic event
//	@Tags			Treasury
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BulkTransactionRequestDTO	true	"Bulk payload"
//	@Success		201		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/treasury/transactions/bulk [post]
func (h *TreasuryHandler) CreateBulkTransactions(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.treasuryService.CreateBulkTransactions(r.Context(), fromRequestDTO(req.Transaction), req.PayerIDs)
	if err != nil {
		respondTreasuryError(w, err)
		return
	}

	response := make([]dto.TransactionResponseDTO, len(created))
	for i, tr := range created {
		response[i] = toTransactionDTO(tr)
	}
	utils.RespondWithJSON(w, http.StatusCreated, response)
}

// GetClubTransactions godoc
//
//	@Summary		List a club's transactions
//	@Tags			Treasury
//	@Security		BearerAuth
//	@Produce		json
//	@Param			clubID	path		int	true	"Club ID"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid club id"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/treasury/transactions/club/{clubID} [get]
func (h *TreasuryHandler) GetClubTransactions(w http.ResponseWriter, r *http.Request) {
	clubID, err := strconv.Atoi(chi.URLParam(r, "clubID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid club id")
		return
	}

	trs, err := h.treasuryService.GetClubTransactions(r.Context(), clubID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(trs))
	for i, tr := range trs {
		response[i] = toTransactionDTO(tr)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SettleTransaction godoc
//
//	@Summary		Settle a pending transaction
//	@Description	Moves a PENDING transaction to COMPLETED and records the payment date. Points are granted once.
//	@Tags			Treasury
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Transaction ID"
//	@Param			request	body		dto.SettleTransactionRequestDTO	true	"Settlement payload"
//	@Success		200		{string}	string	"settled"
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Transaction not pending"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/treasury/transactions/{id}/settle [patch]
func (h *TreasuryHandler) SettleTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req dto.SettleTransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PaymentDate.IsZero() {
		req.PaymentDate = time.Now()
	}

	if err := h.treasuryService.SettleTransaction(r.Context(), transactionID, req.PaymentDate); err != nil {
		respondTreasuryError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "settled")
}

// ApproveTransaction godoc
//
//	@Summary		Approve a self-reported payment
//	@Tags			Treasury
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{string}	string	"approved"
//	@Failure		400	{object}	utils.Response	"Invalid transaction id"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Transaction not awaiting approval"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/treasury/transactions/{id}/approve [patch]
func (h *TreasuryHandler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.treasuryService.ApproveTransaction(r.Context(), transactionID); err != nil {
		respondTreasuryError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "approved")
}

// RejectTransaction godoc
//
//	@Summary		Reject a self-reported payment
//	@Tags			Treasury
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{string}	string	"rejected"
//	@Failure		400	{object}	utils.Response	"Invalid transaction id"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Transaction not awaiting approval"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/treasury/transactions/{id}/reject [patch]
func (h *TreasuryHandler) RejectTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.treasuryService.RejectTransaction(r.Context(), transactionID); err != nil {
		respondTreasuryError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "rejected")
}

// DeleteTransaction godoc
//
//	@Summary		Delete a transaction
//	@Description	Removes a transaction; a completed one first has its point grant reversed.
//	@Tags			Treasury
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction ID"
//	@Success		200	{string}	string	"deleted"
//	@Failure		400	{object}	utils.Response	"Invalid transaction id"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/treasury/transactions/{id} [delete]
func (h *TreasuryHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	if err := h.treasuryService.DeleteTransaction(r.Context(), transactionID); err != nil {
		respondTreasuryError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "deleted")
}

func respondTreasuryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, treasuryservice.ErrTransactionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, treasuryservice.ErrInvalidTransactionState):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, treasuryservice.ErrInvalidTransactionType),
		errors.Is(err, treasuryservice.ErrInvalidAmount),
		errors.Is(err, treasuryservice.ErrNoBeneficiaries):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func fromRequestDTO(req dto.CreateTransactionRequestDTO) domain.Transaction {
	return domain.Transaction{
		ClubID:      req.ClubID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Points:      req.Points,
		ProofURL:    req.ProofURL,
		PayerID:     req.PayerID,
	}
}

func toTransactionDTO(tr domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          tr.ID,
		ClubID:      tr.ClubID,
		Type:        tr.Type,
		Amount:      tr.Amount,
		Description: tr.Description,
		Category:    tr.Category,
		Date:        tr.Date,
		DueDate:     tr.DueDate,
		Status:      tr.Status,
		Points:      tr.Points,
		ProofURL:    tr.ProofURL,
		PayerID:     tr.PayerID,
		PaymentDate: tr.PaymentDate,
		CreatedAt:   tr.CreatedAt,
	}
}
