package booking

import "time"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusWaitlist  Status = "waitlist"
	StatusCancelled Status = "cancelled"
)

// Booking records the class capacity and the number of active bookings
// that existed at the moment of booking, not counting this one. The
// waitlist position is derived from those snapshots, never stored.
type Booking struct {
	ID               string    `db:"id" json:"id"`
	MemberID         string    `db:"member_id" json:"member_id"`
	ClassID          string    `db:"class_id" json:"class_id"`
	ClassDate        time.Time `db:"class_date" json:"class_date"`
	StartTime        string    `db:"start_time" json:"start_time"`
	EndTime          string    `db:"end_time" json:"end_time"`
	Status           Status    `db:"status" json:"status"`
	CapacitySnapshot int       `db:"capacity_snapshot" json:"capacity_snapshot"`
	BookingsSnapshot int       `db:"bookings_snapshot" json:"bookings_snapshot"`
	BookedAt         time.Time `db:"booked_at" json:"booked_at"`
}

type BookingWithClass struct {
	Booking
	ClassName        string `db:"class_name" json:"class_name"`
	InstructorName   string `db:"instructor_name" json:"instructor_name"`
	WaitlistPosition *int   `json:"waitlist_position,omitempty"`
}

type BookRequest struct {
	ClassDate string `json:"class_date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CancelResponse struct {
	Message string `json:"message" example:"Booking cancelled successfully"`
}
