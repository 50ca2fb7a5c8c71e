package booking

import (
	"context"
	"errors"
	"time"

	"topdog/internal/class"
	"topdog/internal/email"
	"topdog/internal/member"
	"topdog/internal/metrics"
)

var (
	ErrClassNotFound = errors.New("class not found")
	ErrClassInactive = errors.New("class is not active")
	ErrDateInPast    = errors.New("cannot book a class in the past")
	ErrAlreadyBooked = errors.New("member already has a booking for this class on that date")
	ErrNotOwner      = errors.New("can only cancel own bookings")
	ErrCancelled     = errors.New("booking is already cancelled")
)

type Service interface {
	BookClass(ctx context.Context, memberID, classID string, date time.Time, startTime, endTime string) (*Booking, error)
	CancelBooking(ctx context.Context, memberID, bookingID string) error
	ListMemberBookings(ctx context.Context, memberID string) ([]BookingWithClass, error)
}

type service struct {
	bookingRepo  Repository
	classRepo    class.Repository
	memberRepo   member.Repository
	emailService *email.Service
	now          func() time.Time
}

func NewService(bookingRepo Repository, classRepo class.Repository, memberRepo member.Repository, emailService *email.Service) Service {
	return &service{
		bookingRepo:  bookingRepo,
		classRepo:    classRepo,
		memberRepo:   memberRepo,
		emailService: emailService,
		now:          time.Now,
	}
}

func (s *service) BookClass(ctx context.Context, memberID, classID string, date time.Time, startTime, endTime string) (*Booking, error) {
	cls, err := s.classRepo.FindByID(ctx, classID)
	if err != nil {
		return nil, ErrClassNotFound
	}

	if !cls.IsActive {
		return nil, ErrClassInactive
	}

	// Compare calendar days: the request date parses to UTC midnight, so
	// build today the same way from the clock's local date.
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, ErrDateInPast
	}

	hasBooking, err := s.bookingRepo.MemberHasActiveBooking(ctx, memberID, classID, date)
	if err != nil {
		return nil, err
	}
	if hasBooking {
		return nil, ErrAlreadyBooked
	}

	activeCount, err := s.bookingRepo.CountActiveForClassDate(ctx, classID, date)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.Create(ctx, &Booking{
		MemberID:         memberID,
		ClassID:          classID,
		ClassDate:        date,
		StartTime:        startTime,
		EndTime:          endTime,
		Status:           InitialStatus(activeCount, cls.Capacity),
		CapacitySnapshot: cls.Capacity,
		BookingsSnapshot: activeCount,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(string(booking.Status))

	if s.emailService != nil {
		if m, err := s.memberRepo.FindByID(ctx, memberID); err == nil {
			switch booking.Status {
			case StatusWaitlist:
				pos := WaitlistPosition(booking.BookingsSnapshot, booking.CapacitySnapshot)
				s.emailService.SendWaitlistNotice(ctx, m.Email, m.FullName, cls.Name, date, pos)
			default:
				s.emailService.SendBookingConfirmation(ctx, m.Email, m.FullName, cls.Name, date, startTime)
			}
		}
	}

	return booking, nil
}

func (s *service) CancelBooking(ctx context.Context, memberID, bookingID string) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	if booking.MemberID != memberID {
		return ErrNotOwner
	}

	if IsTerminal(booking.Status) {
		return ErrCancelled
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, ErrBookingNotFoundOrAlreadyCancelled) {
			return ErrCancelled
		}
		return err
	}

	metrics.RecordBookingCancellation()

	if s.emailService != nil {
		m, err := s.memberRepo.FindByID(ctx, memberID)
		if err == nil {
			className := booking.ClassID
			if cls, err := s.classRepo.FindByID(ctx, booking.ClassID); err == nil {
				className = cls.Name
			}
			s.emailService.SendBookingCancellation(ctx, m.Email, m.FullName, className, booking.ClassDate)
		}
	}

	return nil
}

func (s *service) ListMemberBookings(ctx context.Context, memberID string) ([]BookingWithClass, error) {
	return s.bookingRepo.ListByMember(ctx, memberID)
}
