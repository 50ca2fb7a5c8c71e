package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStatus(t *testing.T) {
	tests := []struct {
		name     string
		active   int
		capacity int
		want     Status
	}{
		{"empty class confirms", 0, 12, StatusConfirmed},
		{"one spot left confirms", 11, 12, StatusConfirmed},
		{"full class waitlists", 12, 12, StatusWaitlist},
		{"over capacity waitlists", 15, 12, StatusWaitlist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitialStatus(tt.active, tt.capacity))
		})
	}
}

func TestWaitlistPosition(t *testing.T) {
	// Booking into a full class: 12 existing bookings against 12 spots
	// makes the new member first in line.
	assert.Equal(t, 1, WaitlistPosition(12, 12))
	assert.Equal(t, 2, WaitlistPosition(13, 12))
	assert.Equal(t, 5, WaitlistPosition(16, 12))
}

func TestWaitlistPosition_FlooredAtOne(t *testing.T) {
	assert.Equal(t, 1, WaitlistPosition(11, 12))
	assert.Equal(t, 1, WaitlistPosition(3, 12))
	assert.Equal(t, 1, WaitlistPosition(0, 0))
}

func TestCancelledIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.False(t, IsTerminal(StatusWaitlist))

	assert.False(t, CanTransition(StatusCancelled, StatusConfirmed))
	assert.False(t, CanTransition(StatusCancelled, StatusWaitlist))
	assert.False(t, CanTransition(StatusCancelled, StatusCancelled))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
	assert.True(t, CanTransition(StatusWaitlist, StatusCancelled))

	// No promotion: a waitlisted booking never becomes confirmed.
	assert.False(t, CanTransition(StatusWaitlist, StatusConfirmed))
	assert.False(t, CanTransition(StatusConfirmed, StatusWaitlist))
	assert.False(t, CanTransition(StatusConfirmed, StatusConfirmed))
	assert.False(t, CanTransition(StatusConfirmed, Status("unknown")))
}
