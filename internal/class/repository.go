package class

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrClassNotFound = errors.New("class not found")

const classColumns = `
	c.id, c.name, c.description, c.instructor_id, c.duration_minutes, c.capacity,
	c.difficulty, c.equipment, c.tags, c.is_active, c.created_at
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Class, schedule []Schedule) (*Class, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyBeginner
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO classes (id, name, description, instructor_id, duration_minutes, capacity, difficulty, equipment, tags, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		RETURNING id, name, description, instructor_id, duration_minutes, capacity, difficulty, equipment, tags, is_active, created_at
	`

	var created Class
	err = tx.QueryRowxContext(ctx, query,
		c.ID, c.Name, c.Description, c.InstructorID, c.Duration, c.Capacity, c.Difficulty, c.Equipment, c.Tags,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}

	if err := insertSchedules(ctx, tx, created.ID, schedule); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*ClassWithInstructor, error) {
	query := `
		SELECT ` + classColumns + `, i.name AS instructor_name
		FROM classes c
		JOIN instructors i ON c.instructor_id = i.id
		WHERE c.id = $1
	`

	var cwi ClassWithInstructor
	err := r.db.GetContext(ctx, &cwi, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}

	schedules, err := r.schedulesFor(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	cwi.Schedule = schedules[id]
	if cwi.Schedule == nil {
		cwi.Schedule = []Schedule{}
	}

	return &cwi, nil
}

func (r *repository) List(ctx context.Context, onlyActive bool) ([]ClassWithInstructor, error) {
	query := `
		SELECT ` + classColumns + `, i.name AS instructor_name
		FROM classes c
		JOIN instructors i ON c.instructor_id = i.id
	`
	if onlyActive {
		query += ` WHERE c.is_active`
	}
	query += ` ORDER BY c.created_at, c.id`

	classes := []ClassWithInstructor{}
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, err
	}

	ids := make([]string, len(classes))
	for idx, c := range classes {
		ids[idx] = c.ID
	}

	schedules, err := r.schedulesFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	for idx := range classes {
		classes[idx].Schedule = schedules[classes[idx].ID]
		if classes[idx].Schedule == nil {
			classes[idx].Schedule = []Schedule{}
		}
	}

	return classes, nil
}

func (r *repository) Update(ctx context.Context, c *Class, schedule []Schedule) (*Class, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		UPDATE classes
		SET name = $2, description = $3, instructor_id = $4, duration_minutes = $5,
		    capacity = $6, difficulty = $7, equipment = $8, tags = $9, is_active = $10
		WHERE id = $1
		RETURNING id, name, description, instructor_id, duration_minutes, capacity, difficulty, equipment, tags, is_active, created_at
	`

	var updated Class
	err = tx.QueryRowxContext(ctx, query,
		c.ID, c.Name, c.Description, c.InstructorID, c.Duration, c.Capacity, c.Difficulty, c.Equipment, c.Tags, c.IsActive,
	).StructScan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}

	if schedule != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM class_schedules WHERE class_id = $1`, c.ID); err != nil {
			return nil, err
		}
		if err := insertSchedules(ctx, tx, c.ID, schedule); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes a class and its schedule entries. Deleting a missing
// class is a no-op.
func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	return err
}

func (r *repository) schedulesFor(ctx context.Context, classIDs []string) (map[string][]Schedule, error) {
	grouped := make(map[string][]Schedule)
	if len(classIDs) == 0 {
		return grouped, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, class_id, day_of_week, start_time, end_time
		FROM class_schedules
		WHERE class_id IN (?)
		ORDER BY class_id, id
	`, classIDs)
	if err != nil {
		return nil, err
	}

	rows := []Schedule{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, s := range rows {
		grouped[s.ClassID] = append(grouped[s.ClassID], s)
	}
	return grouped, nil
}

func insertSchedules(ctx context.Context, tx *sqlx.Tx, classID string, schedule []Schedule) error {
	for _, s := range schedule {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO class_schedules (id, class_id, day_of_week, start_time, end_time)
			VALUES ($1, $2, $3, $4, $5)
		`, s.ID, classID, s.DayOfWeek, s.StartTime, s.EndTime)
		if err != nil {
			return err
		}
	}
	return nil
}
