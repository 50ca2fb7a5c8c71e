package checkin

import "context"

type Repository interface {
	Create(ctx context.Context, ci *CheckIn) (*CheckIn, error)
	FindByID(ctx context.Context, id string) (*CheckIn, error)
	CheckOut(ctx context.Context, id string) (*CheckIn, error)
	ListByMember(ctx context.Context, memberID string) ([]CheckIn, error)
}
