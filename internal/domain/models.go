package domain

import "time"

// Subscription status of a club.
const (
	SubscriptionActive   string = "ACTIVE"
	SubscriptionOverdue  string = "OVERDUE"
	SubscriptionCanceled string = "CANCELED"
)

// Payment lifecycle.
const (
	PaymentPending   string = "PENDING"
	PaymentConfirmed string = "CONFIRMED"
	PaymentRefunded  string = "REFUNDED"
)

// Payment types.
const (
	PaymentTypeSubscription   string = "SUBSCRIPTION"
	PaymentTypeMemberAddition string = "MEMBER_ADDITION"
	PaymentTypeRenewal        string = "RENEWAL"
)

// The only supported payment method is a manual PIX transfer confirmed
// out of band by an operator.
const PaymentMethodPix string = "PIX"

// Transaction lifecycle.
const (
	TransactionPending         string = "PENDING"
	TransactionWaitingApproval string = "WAITING_APPROVAL"
	TransactionCompleted       string = "COMPLETED"
	TransactionCanceled        string = "CANCELED"
)

// Transaction types.
const (
	TransactionIncome  string = "INCOME"
	TransactionExpense string = "EXPENSE"
)

type Club struct {
	ID                 int       `db:"id"`
	Name               string    `db:"name"`
	MemberLimit        int       `db:"member_limit"`
	SubscriptionStatus string    `db:"subscription_status"`
	NextBillingDate    time.Time `db:"next_billing_date"`
	GracePeriodDays    int       `db:"grace_period_days"`
	PlanTier           string    `db:"plan_tier"`
	CreatedAt          time.Time `db:"created_at"`
}

// PaymentMetadata is the typed payload carried by a payment. Which fields
// are meaningful depends on the payment type: SUBSCRIPTION carries
// MemberCount/Months/BillingCycle, MEMBER_ADDITION carries
// NewMemberLimit/MemberCount, RENEWAL carries Months.
type PaymentMetadata struct {
	MemberCount    int    `json:"memberCount,omitempty"`
	Months         int    `json:"months,omitempty"`
	BillingCycle   string `json:"billingCycle,omitempty"`
	NewMemberLimit int    `json:"newMemberLimit,omitempty"`
}

type Payment struct {
	ID          int             `db:"id"`
	ClubID      int             `db:"club_id"`
	ClubName    string          `db:"club_name"`
	Reference   string          `db:"reference"`
	Type        string          `db:"type"`
	Amount      float64         `db:"amount"`
	Status      string          `db:"status"`
	Method      string          `db:"method"`
	Description string          `db:"description"`
	Metadata    PaymentMetadata `db:"metadata"`
	// Snapshot of the club's entitlements taken when the payment is
	// confirmed. A refund restores these values instead of subtracting
	// the applied delta.
	PrevMemberLimit     *int       `db:"prev_member_limit"`
	PrevNextBillingDate *time.Time `db:"prev_next_billing_date"`
	ExpiresAt           time.Time  `db:"expires_at"`
	ConfirmedAt         *time.Time `db:"confirmed_at"`
	ConfirmedBy         string     `db:"confirmed_by"`
	CreatedAt           time.Time  `db:"created_at"`
}

type Transaction struct {
	ID          int        `db:"id"`
	ClubID      int        `db:"club_id"`
	Type        string     `db:"type"`
	Amount      float64    `db:"amount"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	Date        time.Time  `db:"date"`
	DueDate     *time.Time `db:"due_date"`
	Status      string     `db:"status"`
	Points      int        `db:"points"`
	ProofURL    string     `db:"proof_url"`
	PayerID     *int       `db:"payer_id"`
	PaymentDate *time.Time `db:"payment_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

type Member struct {
	ID        int       `db:"id"`
	ClubID    int       `db:"club_id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	Gender    string    `db:"gender"`
	BirthDate time.Time `db:"birth_date"`
	Active    bool      `db:"active"`
	Points    int       `db:"points"`
	CreatedAt time.Time `db:"created_at"`
}

// CanAddMemberResult is computed per request from the club row and the
// live member count; it is never persisted.
type CanAddMemberResult struct {
	CanAdd       bool   `json:"canAdd"`
	CurrentCount int    `json:"currentCount"`
	MemberLimit  int    `json:"memberLimit"`
	Reason       string `json:"reason,omitempty"`
}

// SubscriptionView is the status view returned for a club, with the
// grace window derived on read.
type SubscriptionView struct {
	ClubID           int       `json:"clubId"`
	ClubName         string    `json:"clubName"`
	Status           string    `json:"status"`
	NextBillingDate  time.Time `json:"nextBillingDate"`
	GracePeriodDays  int       `json:"gracePeriodDays"`
	IsInGracePeriod  bool      `json:"isInGracePeriod"`
	DaysUntilOverdue int       `json:"daysUntilOverdue"`
	MemberCount      int       `json:"memberCount"`
	MemberLimit      int       `json:"memberLimit"`
}

// SweepResult summarizes one run of the subscription expiry sweep.
type SweepResult struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
}
