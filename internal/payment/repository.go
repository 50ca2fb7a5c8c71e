package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrPaymentNotFound = errors.New("payment not found")

const paymentColumns = `
	id, member_id, paid_at, amount_cents, status, description, plan_type, method, invoice
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.PlanType == "" {
		p.PlanType = PlanTypeBasic
	}
	if p.Method == "" {
		p.Method = MethodCard
	}
	if p.PaidAt.IsZero() {
		p.PaidAt = time.Now()
	}
	if p.Invoice == nil {
		inv := fmt.Sprintf("INV-%s-%s", p.PaidAt.Format("200601"), p.ID[:8])
		p.Invoice = &inv
	}

	query := `
		INSERT INTO payments (id, member_id, paid_at, amount_cents, status, description, plan_type, method, invoice)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + paymentColumns

	var created Payment
	err := r.db.GetContext(ctx, &created, query,
		p.ID, p.MemberID, p.PaidAt, p.AmountCents, p.Status, p.Description, p.PlanType, p.Method, p.Invoice,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID string) ([]Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE member_id = $1
		ORDER BY paid_at DESC, id
	`

	payments := []Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, memberID); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) List(ctx context.Context) ([]PaymentWithMember, error) {
	query := `
		SELECT p.id, p.member_id, p.paid_at, p.amount_cents, p.status, p.description,
		       p.plan_type, p.method, p.invoice,
		       m.full_name AS member_name, m.email AS member_email
		FROM payments p
		JOIN members m ON p.member_id = m.id
		ORDER BY p.paid_at DESC, p.id
	`

	payments := []PaymentWithMember{}
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		return nil, err
	}

	return payments, nil
}
