package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBooking(t *testing.T) {
	before := testutil.ToFloat64(BookingsTotal.WithLabelValues("confirmed"))

	RecordBooking("confirmed")

	after := testutil.ToFloat64(BookingsTotal.WithLabelValues("confirmed"))
	assert.Equal(t, before+1, after)
}

func TestRecordBookingCancellation(t *testing.T) {
	before := testutil.ToFloat64(BookingCancellationsTotal)

	RecordBookingCancellation()

	after := testutil.ToFloat64(BookingCancellationsTotal)
	assert.Equal(t, before+1, after)
}

func TestRecordSignup(t *testing.T) {
	before := testutil.ToFloat64(SignupsTotal.WithLabelValues("premium"))

	RecordSignup("premium")

	after := testutil.ToFloat64(SignupsTotal.WithLabelValues("premium"))
	assert.Equal(t, before+1, after)
}

func TestRecordCheckIn(t *testing.T) {
	before := testutil.ToFloat64(CheckInsTotal.WithLabelValues("class"))

	RecordCheckIn("class")

	after := testutil.ToFloat64(CheckInsTotal.WithLabelValues("class"))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/classes", "200"))

	RecordHTTPRequest("GET", "/classes", "200", 0.05)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/classes", "200"))
	assert.Equal(t, before+1, after)
}
