package instructor

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrInstructorNotFound = errors.New("instructor not found")

const instructorColumns = `
	id, name, email, specialties, bio, experience_years, rating, total_classes, join_date, status, created_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, i *Instructor) (*Instructor, error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Status == "" {
		i.Status = StatusActive
	}
	if i.JoinDate.IsZero() {
		i.JoinDate = time.Now()
	}

	query := `
		INSERT INTO instructors (id, name, email, specialties, bio, experience_years, rating, total_classes, join_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + instructorColumns

	var created Instructor
	err := r.db.GetContext(ctx, &created, query,
		i.ID, i.Name, i.Email, i.Specialties, i.Bio, i.Experience, i.Rating, i.TotalClasses, i.JoinDate, i.Status,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE id = $1`

	var i Instructor
	err := r.db.GetContext(ctx, &i, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, err
	}

	return &i, nil
}

func (r *repository) List(ctx context.Context) ([]Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors ORDER BY join_date, id`

	instructors := []Instructor{}
	err := r.db.SelectContext(ctx, &instructors, query)
	if err != nil {
		return nil, err
	}

	return instructors, nil
}

func (r *repository) Update(ctx context.Context, i *Instructor) (*Instructor, error) {
	query := `
		UPDATE instructors
		SET name = $2, specialties = $3, bio = $4, experience_years = $5, rating = $6, status = $7
		WHERE id = $1
		RETURNING ` + instructorColumns

	var updated Instructor
	err := r.db.GetContext(ctx, &updated, query,
		i.ID, i.Name, i.Specialties, i.Bio, i.Experience, i.Rating, i.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes an instructor. Deleting a missing instructor is a no-op.
func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	return err
}
