package booking

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) (*Booking, error)
	FindByID(ctx context.Context, id string) (*Booking, error)
	Cancel(ctx context.Context, id string) error
	CountActiveForClassDate(ctx context.Context, classID string, date time.Time) (int, error)
	MemberHasActiveBooking(ctx context.Context, memberID, classID string, date time.Time) (bool, error)
	ListByMember(ctx context.Context, memberID string) ([]BookingWithClass, error)
	NextWaitlisted(ctx context.Context, classID string, date time.Time) (*Booking, error)
}
