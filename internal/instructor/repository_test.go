package instructor

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var instructorRows = []string{
	"id", "name", "email", "specialties", "bio", "experience_years", "rating", "total_classes", "join_date", "status", "created_at",
}

func setupInstructorMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestCreateInstructor(t *testing.T) {
	repo, mock, closeDB := setupInstructorMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO instructors").
		WillReturnRows(sqlmock.NewRows(instructorRows).AddRow(
			"instructor-1", "Sarah Johnson", "sarah.instructor@topdoggym.com",
			`{HIIT,"Strength Training"}`, "Certified personal trainer.",
			8, 4.9, 245, now, "active", now,
		))

	created, err := repo.Create(context.Background(), &Instructor{
		Name:        "Sarah Johnson",
		Email:       "sarah.instructor@topdoggym.com",
		Specialties: pq.StringArray{"HIIT", "Strength Training"},
		Experience:  8,
		Rating:      4.9,
	})

	require.NoError(t, err)
	assert.Equal(t, "instructor-1", created.ID)
	assert.Equal(t, Status("active"), created.Status)
	assert.Len(t, created.Specialties, 2)
}

func TestFindInstructorByID_NotFound(t *testing.T) {
	repo, mock, closeDB := setupInstructorMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM instructors WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(instructorRows))

	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrInstructorNotFound)
}

func TestDeleteInstructor_Idempotent(t *testing.T) {
	repo, mock, closeDB := setupInstructorMock(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM instructors").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")

	assert.NoError(t, err)
}
