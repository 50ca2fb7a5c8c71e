package member

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

const memberColumns = `
	id, email, full_name, password_hash, role, age, gender, occupation, phone,
	membership_plan, membership_status, join_date, next_billing_date, created_at, updated_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.MembershipPlan == "" {
		m.MembershipPlan = PlanBasic
	}
	if m.MembershipStatus == "" {
		m.MembershipStatus = StatusActive
	}
	if m.JoinDate.IsZero() {
		m.JoinDate = time.Now()
	}
	if m.NextBillingDate == nil && m.MembershipStatus != StatusCancelled {
		next := m.JoinDate.AddDate(0, 1, 0)
		m.NextBillingDate = &next
	}

	query := `
		INSERT INTO members (id, email, full_name, password_hash, role, age, gender, occupation, phone,
		                     membership_plan, membership_status, join_date, next_billing_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + memberColumns

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		m.ID, m.Email, m.FullName, m.PasswordHash, m.Role, m.Age, m.Gender, m.Occupation, m.Phone,
		m.MembershipPlan, m.MembershipStatus, m.JoinDate, m.NextBillingDate,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE email = $1`

	var m Member
	err := r.db.GetContext(ctx, &m, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) List(ctx context.Context) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY join_date, id`

	members := []Member{}
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Update(ctx context.Context, m *Member) (*Member, error) {
	// A cancelled membership must not keep a scheduled billing date.
	if m.MembershipStatus == StatusCancelled {
		m.NextBillingDate = nil
	}

	query := `
		UPDATE members
		SET full_name = $2, age = $3, gender = $4, occupation = $5, phone = $6,
		    membership_plan = $7, membership_status = $8, next_billing_date = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + memberColumns

	var updated Member
	err := r.db.GetContext(ctx, &updated, query,
		m.ID, m.FullName, m.Age, m.Gender, m.Occupation, m.Phone,
		m.MembershipPlan, m.MembershipStatus, m.NextBillingDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes a member. Deleting a missing member is a no-op.
func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	return err
}
