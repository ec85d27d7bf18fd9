package dto

import "time"

type CreateTransactionRequestDTO struct {
	ClubID      int        `json:"clubId" example:"1"`
	Type        string     `json:"type" example:"INCOME"`
	Amount      float64    `json:"amount" example:"15.50"`
	Description string     `json:"description" example:"Monthly fee - March"`
	Category    string     `json:"category" example:"MONTHLY_FEE"`
	Date        time.Time  `json:"date,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status,omitempty" example:"PENDING"`
	Points      int        `json:"points,omitempty" example:"50"`
	ProofURL    string     `json:"proofUrl,omitempty"`
	PayerID     *int       `json:"payerId,omitempty" example:"7"`
}

type BulkTransactionRequestDTO struct {
	Transaction CreateTransactionRequestDTO `json:"transaction"`
	PayerIDs    []int                       `json:"payerIds" example:"1,2,3"`
}

type SettleTransactionRequestDTO struct {
	PaymentDate time.Time `json:"paymentDate"`
}

type TransactionResponseDTO struct {
	ID          int        `json:"id" example:"1"`
	ClubID      int        `json:"clubId" example:"1"`
	Type        string     `json:"type" example:"INCOME"`
	Amount      float64    `json:"amount" example:"15.50"`
	Description string     `json:"description" example:"Monthly fee - March"`
	Category    string     `json:"category" example:"MONTHLY_FEE"`
	Date        time.Time  `json:"date"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `json:"status" example:"PENDING"`
	Points      int        `json:"points,omitempty" example:"50"`
	ProofURL    string     `json:"proofUrl,omitempty"`
	PayerID     *int       `json:"payerId,omitempty" example:"7"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
