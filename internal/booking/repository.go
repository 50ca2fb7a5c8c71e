package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound                   = errors.New("booking not found")
	ErrBookingNotFoundOrAlreadyCancelled = errors.New("booking not found or already cancelled")
)

const bookingColumns = `
	id, member_id, class_id, class_date, start_time, end_time, status,
	capacity_snapshot, bookings_snapshot, booked_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Booking) (*Booking, error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.Status == "" {
		b.Status = StatusConfirmed
	}

	query := `
		INSERT INTO bookings (id, member_id, class_id, class_date, start_time, end_time, status, capacity_snapshot, bookings_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns

	var created Booking
	err := r.db.GetContext(ctx, &created, query,
		b.ID, b.MemberID, b.ClassID, b.ClassDate, b.StartTime, b.EndTime,
		b.Status, b.CapacitySnapshot, b.BookingsSnapshot,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// Cancel transitions a booking to cancelled. It refuses to touch bookings
// that are already cancelled, so cancellation is a one-way door.
func (r *repository) Cancel(ctx context.Context, id string) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = $1 AND status <> 'cancelled'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) CountActiveForClassDate(ctx context.Context, classID string, date time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE class_id = $1 AND class_date = $2 AND status <> 'cancelled'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, classID, date)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) MemberHasActiveBooking(ctx context.Context, memberID, classID string, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE member_id = $1 AND class_id = $2 AND class_date = $3 AND status <> 'cancelled'
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, memberID, classID, date)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID string) ([]BookingWithClass, error) {
	query := `
		SELECT b.id, b.member_id, b.class_id, b.class_date, b.start_time, b.end_time,
		       b.status, b.capacity_snapshot, b.bookings_snapshot, b.booked_at,
		       c.name AS class_name, i.name AS instructor_name
		FROM bookings b
		JOIN classes c ON b.class_id = c.id
		JOIN instructors i ON c.instructor_id = i.id
		WHERE b.member_id = $1
		ORDER BY b.class_date DESC, b.start_time DESC
	`

	bookings := []BookingWithClass{}
	if err := r.db.SelectContext(ctx, &bookings, query, memberID); err != nil {
		return nil, err
	}

	for idx := range bookings {
		if bookings[idx].Status == StatusWaitlist {
			pos := WaitlistPosition(bookings[idx].BookingsSnapshot, bookings[idx].CapacitySnapshot)
			bookings[idx].WaitlistPosition = &pos
		}
	}

	return bookings, nil
}

// NextWaitlisted returns the oldest waitlisted booking for a class
// occurrence, for staff deciding who gets a freed spot.
func (r *repository) NextWaitlisted(ctx context.Context, classID string, date time.Time) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE class_id = $1 AND class_date = $2 AND status = 'waitlist'
		ORDER BY booked_at
		LIMIT 1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, classID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}
