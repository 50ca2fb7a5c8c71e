package checkin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrCheckInNotFound   = errors.New("check-in not found")
	ErrAlreadyCheckedOut = errors.New("already checked out")
)

const checkInColumns = `
	id, member_id, facility, check_in_time, check_out_time, duration_minutes
`

const DefaultFacility = "main gym"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ci *CheckIn) (*CheckIn, error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	if ci.Facility == "" {
		ci.Facility = DefaultFacility
	}

	query := `
		INSERT INTO check_ins (id, member_id, facility)
		VALUES ($1, $2, $3)
		RETURNING ` + checkInColumns

	var created CheckIn
	err := r.db.GetContext(ctx, &created, query, ci.ID, ci.MemberID, ci.Facility)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM check_ins WHERE id = $1`

	var ci CheckIn
	err := r.db.GetContext(ctx, &ci, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCheckInNotFound
	}
	if err != nil {
		return nil, err
	}

	return &ci, nil
}

// CheckOut stamps the check-out time and records the visit duration.
// A visit can only be closed once.
func (r *repository) CheckOut(ctx context.Context, id string) (*CheckIn, error) {
	query := `
		UPDATE check_ins
		SET check_out_time = NOW(),
		    duration_minutes = CEIL(EXTRACT(EPOCH FROM (NOW() - check_in_time)) / 60)
		WHERE id = $1 AND check_out_time IS NULL
		RETURNING ` + checkInColumns

	var ci CheckIn
	err := r.db.GetContext(ctx, &ci, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		if _, findErr := r.FindByID(ctx, id); findErr == nil {
			return nil, ErrAlreadyCheckedOut
		}
		return nil, ErrCheckInNotFound
	}
	if err != nil {
		return nil, err
	}

	return &ci, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID string) ([]CheckIn, error) {
	query := `
		SELECT ` + checkInColumns + `
		FROM check_ins
		WHERE member_id = $1
		ORDER BY check_in_time DESC
	`

	checkIns := []CheckIn{}
	if err := r.db.SelectContext(ctx, &checkIns, query, memberID); err != nil {
		return nil, err
	}

	return checkIns, nil
}
