package class

import "context"

type Repository interface {
	Create(ctx context.Context, c *Class, schedule []Schedule) (*Class, error)
	FindByID(ctx context.Context, id string) (*ClassWithInstructor, error)
	List(ctx context.Context, onlyActive bool) ([]ClassWithInstructor, error)
	Update(ctx context.Context, c *Class, schedule []Schedule) (*Class, error)
	Delete(ctx context.Context, id string) error
}
