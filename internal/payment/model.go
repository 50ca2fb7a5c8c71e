package payment

import "time"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

type Method string

const (
	MethodCard Method = "card"
	MethodBank Method = "bank"
	MethodCash Method = "cash"
)

type PlanType string

const (
	PlanTypeBasic   PlanType = "basic"
	PlanTypePremium PlanType = "premium"
)

// Payment amounts are integer cents. Dollar formatting is a display
// concern and never enters the database.
type Payment struct {
	ID          string    `db:"id" json:"id"`
	MemberID    string    `db:"member_id" json:"member_id"`
	PaidAt      time.Time `db:"paid_at" json:"paid_at"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	Status      Status    `db:"status" json:"status"`
	Description string    `db:"description" json:"description"`
	PlanType    PlanType  `db:"plan_type" json:"plan_type"`
	Method      Method    `db:"method" json:"method"`
	Invoice     *string   `db:"invoice" json:"invoice,omitempty"`
}

type PaymentWithMember struct {
	Payment
	MemberName  string `db:"member_name" json:"member_name"`
	MemberEmail string `db:"member_email" json:"member_email"`
}

type CreateRequest struct {
	MemberID    string `json:"member_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Status      string `json:"status" binding:"omitempty,oneof=completed pending failed"`
	Description string `json:"description"`
	PlanType    string `json:"plan_type" binding:"omitempty,oneof=basic premium"`
	Method      string `json:"method" binding:"omitempty,oneof=card bank cash"`
	Invoice     string `json:"invoice"`
	PaidAt      string `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
}
