package instructor

import "context"

type Repository interface {
	Create(ctx context.Context, i *Instructor) (*Instructor, error)
	FindByID(ctx context.Context, id string) (*Instructor, error)
	List(ctx context.Context) ([]Instructor, error)
	Update(ctx context.Context, i *Instructor) (*Instructor, error)
	Delete(ctx context.Context, id string) error
}
