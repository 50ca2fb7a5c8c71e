package booking

import (
	"context"
	"testing"
	"time"

	"topdog/internal/class"
	"topdog/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepo struct{ mock.Mock }
type MockClassRepo struct{ mock.Mock }
type MockMemberRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, b *Booking) (*Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingRepo) CountActiveForClassDate(ctx context.Context, classID string, date time.Time) (int, error) {
	args := m.Called(ctx, classID, date)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepo) MemberHasActiveBooking(ctx context.Context, memberID, classID string, date time.Time) (bool, error) {
	args := m.Called(ctx, memberID, classID, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepo) ListByMember(ctx context.Context, memberID string) ([]BookingWithClass, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BookingWithClass), args.Error(1)
}

func (m *MockBookingRepo) NextWaitlisted(ctx context.Context, classID string, date time.Time) (*Booking, error) {
	args := m.Called(ctx, classID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockClassRepo) Create(ctx context.Context, c *class.Class, schedule []class.Schedule) (*class.Class, error) {
	args := m.Called(ctx, c, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*class.Class), args.Error(1)
}

func (m *MockClassRepo) FindByID(ctx context.Context, id string) (*class.ClassWithInstructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*class.ClassWithInstructor), args.Error(1)
}

func (m *MockClassRepo) List(ctx context.Context, onlyActive bool) ([]class.ClassWithInstructor, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]class.ClassWithInstructor), args.Error(1)
}

func (m *MockClassRepo) Update(ctx context.Context, c *class.Class, schedule []class.Schedule) (*class.Class, error) {
	args := m.Called(ctx, c, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*class.Class), args.Error(1)
}

func (m *MockClassRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberRepo) Create(ctx context.Context, mem *member.Member) (*member.Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) FindByID(ctx context.Context, id string) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepo) List(ctx context.Context) ([]member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, mem *member.Member) (*member.Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newTestService(bookingRepo Repository, classRepo class.Repository, memberRepo member.Repository) *service {
	return &service{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		memberRepo:  memberRepo,
		now:         func() time.Time { return time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC) },
	}
}

func activeClass(capacity int) *class.ClassWithInstructor {
	return &class.ClassWithInstructor{
		Class: class.Class{
			ID:       "class-1",
			Name:     "Morning HIIT",
			Capacity: capacity,
			IsActive: true,
		},
		InstructorName: "Sarah Johnson",
	}
}

func TestBookClass_ConfirmsWhenSpotsFree(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	classRepo.On("FindByID", mock.Anything, "class-1").Return(activeClass(12), nil)
	bookingRepo.On("MemberHasActiveBooking", mock.Anything, "member-1", "class-1", date).Return(false, nil)
	bookingRepo.On("CountActiveForClassDate", mock.Anything, "class-1", date).Return(5, nil)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.Status == StatusConfirmed && b.CapacitySnapshot == 12 && b.BookingsSnapshot == 5
	})).Return(&Booking{ID: "booking-1", Status: StatusConfirmed, CapacitySnapshot: 12, BookingsSnapshot: 5}, nil)

	booking, err := svc.BookClass(context.Background(), "member-1", "class-1", date, "06:30", "07:15")

	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, booking.Status)
	bookingRepo.AssertExpectations(t)
}

func TestBookClass_WaitlistsWhenFull(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	classRepo.On("FindByID", mock.Anything, "class-1").Return(activeClass(12), nil)
	bookingRepo.On("MemberHasActiveBooking", mock.Anything, "member-1", "class-1", date).Return(false, nil)
	bookingRepo.On("CountActiveForClassDate", mock.Anything, "class-1", date).Return(12, nil)
	bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *Booking) bool {
		return b.Status == StatusWaitlist && b.BookingsSnapshot == 12
	})).Return(&Booking{ID: "booking-1", Status: StatusWaitlist, CapacitySnapshot: 12, BookingsSnapshot: 12}, nil)

	booking, err := svc.BookClass(context.Background(), "member-1", "class-1", date, "06:30", "07:15")

	require.NoError(t, err)
	assert.Equal(t, StatusWaitlist, booking.Status)
	// First waitlister on a full 12-spot class is position 1.
	assert.Equal(t, 1, WaitlistPosition(booking.BookingsSnapshot, booking.CapacitySnapshot))
}

func TestBookClass_RejectsDuplicate(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	classRepo.On("FindByID", mock.Anything, "class-1").Return(activeClass(12), nil)
	bookingRepo.On("MemberHasActiveBooking", mock.Anything, "member-1", "class-1", date).Return(true, nil)

	_, err := svc.BookClass(context.Background(), "member-1", "class-1", date, "06:30", "07:15")

	assert.ErrorIs(t, err, ErrAlreadyBooked)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookClass_RejectsPastDate(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	classRepo.On("FindByID", mock.Anything, "class-1").Return(activeClass(12), nil)

	past := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	_, err := svc.BookClass(context.Background(), "member-1", "class-1", past, "06:30", "07:15")

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestBookClass_SameDayNearMidnightLocal(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	// 23:30 on Jan 10 in a UTC-offset zone is already Jan 11 in UTC; the
	// guard still accepts a booking for the local calendar day.
	loc := time.FixedZone("UTC-5", -5*60*60)
	svc.now = func() time.Time { return time.Date(2025, 1, 10, 23, 30, 0, 0, loc) }

	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	classRepo.On("FindByID", mock.Anything, "class-1").Return(activeClass(12), nil)
	bookingRepo.On("MemberHasActiveBooking", mock.Anything, "member-1", "class-1", date).Return(false, nil)
	bookingRepo.On("CountActiveForClassDate", mock.Anything, "class-1", date).Return(0, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).
		Return(&Booking{ID: "booking-1", Status: StatusConfirmed}, nil)

	_, err := svc.BookClass(context.Background(), "member-1", "class-1", date, "23:45", "23:59")

	assert.NoError(t, err)
}

func TestBookClass_RejectsInactiveClass(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	inactive := activeClass(12)
	inactive.IsActive = false
	classRepo.On("FindByID", mock.Anything, "class-1").Return(inactive, nil)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.BookClass(context.Background(), "member-1", "class-1", date, "06:30", "07:15")

	assert.ErrorIs(t, err, ErrClassInactive)
}

func TestBookClass_UnknownClass(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	classRepo.On("FindByID", mock.Anything, "missing").Return(nil, class.ErrClassNotFound)

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.BookClass(context.Background(), "member-1", "missing", date, "06:30", "07:15")

	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestCancelBooking(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	bookingRepo.On("FindByID", mock.Anything, "booking-1").Return(&Booking{
		ID: "booking-1", MemberID: "member-1", ClassID: "class-1", Status: StatusConfirmed,
	}, nil)
	bookingRepo.On("Cancel", mock.Anything, "booking-1").Return(nil)

	err := svc.CancelBooking(context.Background(), "member-1", "booking-1")

	assert.NoError(t, err)
	bookingRepo.AssertExpectations(t)
}

func TestCancelBooking_RejectsOtherMembers(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	bookingRepo.On("FindByID", mock.Anything, "booking-1").Return(&Booking{
		ID: "booking-1", MemberID: "member-1", Status: StatusConfirmed,
	}, nil)

	err := svc.CancelBooking(context.Background(), "member-2", "booking-1")

	assert.ErrorIs(t, err, ErrNotOwner)
	bookingRepo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestCancelBooking_CancelledStaysCancelled(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	bookingRepo.On("FindByID", mock.Anything, "booking-1").Return(&Booking{
		ID: "booking-1", MemberID: "member-1", Status: StatusCancelled,
	}, nil)

	err := svc.CancelBooking(context.Background(), "member-1", "booking-1")

	assert.ErrorIs(t, err, ErrCancelled)
	bookingRepo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}

func TestCancelBooking_NotFound(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	bookingRepo.On("FindByID", mock.Anything, "missing").Return(nil, ErrBookingNotFound)

	err := svc.CancelBooking(context.Background(), "member-1", "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListMemberBookings_DerivesWaitlistPosition(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	classRepo := new(MockClassRepo)
	memberRepo := new(MockMemberRepo)
	svc := newTestService(bookingRepo, classRepo, memberRepo)

	pos := 2
	bookingRepo.On("ListByMember", mock.Anything, "member-1").Return([]BookingWithClass{
		{Booking: Booking{ID: "b1", Status: StatusConfirmed}, ClassName: "Morning HIIT"},
		{Booking: Booking{ID: "b2", Status: StatusWaitlist, CapacitySnapshot: 12, BookingsSnapshot: 13}, ClassName: "Power Yoga", WaitlistPosition: &pos},
	}, nil)

	bookings, err := svc.ListMemberBookings(context.Background(), "member-1")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Nil(t, bookings[0].WaitlistPosition)
	require.NotNil(t, bookings[1].WaitlistPosition)
	assert.Equal(t, 2, *bookings[1].WaitlistPosition)
}
