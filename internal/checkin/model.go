package checkin

import "time"

type CheckIn struct {
	ID              string     `db:"id" json:"id"`
	MemberID        string     `db:"member_id" json:"member_id"`
	Facility        string     `db:"facility" json:"facility"`
	CheckInTime     time.Time  `db:"check_in_time" json:"check_in_time"`
	CheckOutTime    *time.Time `db:"check_out_time" json:"check_out_time,omitempty"`
	DurationMinutes *int       `db:"duration_minutes" json:"duration_minutes,omitempty"`
}

type CheckInRequest struct {
	Facility string `json:"facility"`
}

// Stats is recomputed from the member's visit history on demand, never
// persisted.
type Stats struct {
	TotalCheckIns int     `json:"total_check_ins"`
	ThisMonth     int     `json:"this_month"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	TotalHours    float64 `json:"total_hours"`
	FavoriteClass string  `json:"favorite_class"`
}
