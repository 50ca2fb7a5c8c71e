package booking

// InitialStatus places a new booking. A class with free spots confirms the
// booking; a full class waitlists it.
func InitialStatus(activeBookings, capacity int) Status {
	if activeBookings < capacity {
		return StatusConfirmed
	}
	return StatusWaitlist
}

// WaitlistPosition derives the queue position from the booking snapshots.
// The bookings snapshot counts the active bookings that existed when this
// one was placed, excluding itself, so a member waitlisted on a full class
// (bookings == capacity) is first in line. Floored at 1 so a position is
// never zero or negative even if the snapshots race.
func WaitlistPosition(bookingsSnapshot, capacitySnapshot int) int {
	pos := bookingsSnapshot - capacitySnapshot + 1
	if pos < 1 {
		pos = 1
	}
	return pos
}

// IsTerminal reports whether a booking status permits no further
// transitions. Cancelled bookings stay cancelled.
func IsTerminal(s Status) bool {
	return s == StatusCancelled
}

// CanTransition reports whether a booking may move between statuses. The
// only transition a live booking supports is cancellation; waitlisted
// bookings are not promoted when a spot frees up.
func CanTransition(from, to Status) bool {
	return !IsTerminal(from) && to == StatusCancelled
}
