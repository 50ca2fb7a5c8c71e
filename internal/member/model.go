package member

import "time"

type Plan string

type Status string

const (
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"

	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCancelled Status = "cancelled"
)

type Member struct {
	ID               string     `db:"id" json:"id"`
	Email            string     `db:"email" json:"email"`
	FullName         string     `db:"full_name" json:"full_name"`
	PasswordHash     string     `db:"password_hash" json:"-"`
	Role             string     `db:"role" json:"role"`
	Age              int        `db:"age" json:"age"`
	Gender           string     `db:"gender" json:"gender"`
	Occupation       string     `db:"occupation" json:"occupation"`
	Phone            string     `db:"phone" json:"phone"`
	MembershipPlan   Plan       `db:"membership_plan" json:"membership_plan"`
	MembershipStatus Status     `db:"membership_status" json:"membership_status"`
	JoinDate         time.Time  `db:"join_date" json:"join_date"`
	NextBillingDate  *time.Time `db:"next_billing_date" json:"next_billing_date,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FullName   string `json:"full_name" binding:"required"`
	Age        int    `json:"age" binding:"omitempty,gte=14,lte=120"`
	Gender     string `json:"gender" binding:"omitempty,oneof=male female"`
	Occupation string `json:"occupation"`
	Phone      string `json:"phone"`
	Plan       string `json:"plan" binding:"omitempty,oneof=basic premium"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	Member       *Member `json:"member,omitempty"`
}

type UpdateRequest struct {
	FullName         string `json:"full_name"`
	Age              int    `json:"age" binding:"omitempty,gte=14,lte=120"`
	Gender           string `json:"gender" binding:"omitempty,oneof=male female"`
	Occupation       string `json:"occupation"`
	Phone            string `json:"phone"`
	MembershipPlan   string `json:"membership_plan" binding:"omitempty,oneof=basic premium"`
	MembershipStatus string `json:"membership_status" binding:"omitempty,oneof=active inactive cancelled"`
}
