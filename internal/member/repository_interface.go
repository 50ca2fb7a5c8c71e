package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	FindByID(ctx context.Context, id string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]Member, error)
	Update(ctx context.Context, m *Member) (*Member, error)
	Delete(ctx context.Context, id string) error
}
