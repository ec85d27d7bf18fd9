package dto

import "time"

type PaymentMetadataDTO struct {
	MemberCount    int    `json:"memberCount,omitempty" example:"10"`
	Months         int    `json:"months,omitempty" example:"3"`
	BillingCycle   string `json:"billingCycle,omitempty" example:"QUARTERLY"`
	NewMemberLimit int    `json:"newMemberLimit,omitempty" example:"40"`
}

type CreatePaymentRequestDTO struct {
	ClubID      int                `json:"clubId" example:"1"`
	Type        string             `json:"type" example:"SUBSCRIPTION"`
	Amount      float64            `json:"amount,omitempty" example:"60"`
	Description string             `json:"description,omitempty" example:"Quarterly - 10 Accesses"`
	Metadata    PaymentMetadataDTO `json:"metadata"`
}

type PaymentResponseDTO struct {
	ID          int                `json:"id" example:"1"`
	ClubID      int                `json:"clubId" example:"1"`
	ClubName    string             `json:"clubName" example:"Falcões do Vale"`
	Reference   string             `json:"reference" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Type        string             `json:"type" example:"SUBSCRIPTION"`
	Amount      float64            `json:"amount" example:"60"`
	Status      string             `json:"status" example:"PENDING"`
	Method      string             `json:"method" example:"PIX"`
	Description string             `json:"description" example:"Quarterly - 10 Accesses"`
	Metadata    PaymentMetadataDTO `json:"metadata"`
	ExpiresAt   time.Time          `json:"expiresAt"`
	ConfirmedAt *time.Time         `json:"confirmedAt,omitempty"`
	ConfirmedBy string             `json:"confirmedBy,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type ConfirmPaymentResponseDTO struct {
	NextBillingDate time.Time `json:"nextBillingDate"`
}

type SweepResponseDTO struct {
	Checked int `json:"checked" example:"12"`
	Updated int `json:"updated" example:"3"`
}

type BillingConfigResponseDTO struct {
	PricePerMember  float64 `json:"pricePerMember" example:"2"`
	GracePeriodDays int     `json:"gracePeriodDays" example:"5"`
	WarningDays     []int   `json:"warningDays"`
	SupportContact  string  `json:"supportContact" example:"suporte@clubhub.app"`
}
