package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) (*Payment, error)
	FindByID(ctx context.Context, id string) (*Payment, error)
	ListByMember(ctx context.Context, memberID string) ([]Payment, error)
	List(ctx context.Context) ([]PaymentWithMember, error)
}
