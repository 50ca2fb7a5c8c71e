package class

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var classRows = []string{
	"id", "name", "description", "instructor_id", "duration_minutes", "capacity",
	"difficulty", "equipment", "tags", "is_active", "created_at",
}

var classWithInstructorRows = append(append([]string{}, classRows...), "instructor_name")

var scheduleRows = []string{"id", "class_id", "day_of_week", "start_time", "end_time"}

func setupClassMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestCreateClass_WithSchedule(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO classes").
		WillReturnRows(sqlmock.NewRows(classRows).AddRow(
			"class-1", "Morning HIIT", "High intensity interval training.",
			"instructor-1", 45, 12, "intermediate",
			`{"Kettlebells"}`, `{HIIT,Cardio}`, true, now,
		))
	mock.ExpectExec("INSERT INTO class_schedules").
		WithArgs(sqlmock.AnyArg(), "class-1", "Monday", "06:30", "07:15").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO class_schedules").
		WithArgs(sqlmock.AnyArg(), "class-1", "Wednesday", "06:30", "07:15").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), &Class{
		Name:         "Morning HIIT",
		Description:  "High intensity interval training.",
		InstructorID: "instructor-1",
		Duration:     45,
		Capacity:     12,
		Difficulty:   DifficultyIntermediate,
	}, []Schedule{
		{DayOfWeek: "Monday", StartTime: "06:30", EndTime: "07:15"},
		{DayOfWeek: "Wednesday", StartTime: "06:30", EndTime: "07:15"},
	})

	require.NoError(t, err)
	assert.Equal(t, "class-1", created.ID)
	assert.True(t, created.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClass_DefaultsDifficultyToBeginner(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO classes").
		WithArgs(sqlmock.AnyArg(), "Open Gym", "", "instructor-1", 60, 30, "beginner", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(classRows).AddRow(
			"class-2", "Open Gym", "", "instructor-1", 60, 30, "beginner",
			`{}`, `{}`, true, now,
		))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), &Class{
		Name:         "Open Gym",
		InstructorID: "instructor-1",
		Duration:     60,
		Capacity:     30,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, DifficultyBeginner, created.Difficulty)
}

func TestFindClassByID_JoinsInstructorName(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM classes c(.+)JOIN instructors i").
		WithArgs("class-1").
		WillReturnRows(sqlmock.NewRows(classWithInstructorRows).AddRow(
			"class-1", "Morning HIIT", "High intensity.", "instructor-1",
			45, 12, "intermediate", `{}`, `{HIIT}`, true, now,
			"Sarah Johnson",
		))
	mock.ExpectQuery("SELECT (.+) FROM class_schedules").
		WillReturnRows(sqlmock.NewRows(scheduleRows).AddRow(
			"sched-1", "class-1", "Monday", "06:30", "07:15",
		))

	cwi, err := repo.FindByID(context.Background(), "class-1")

	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", cwi.InstructorName)
	require.Len(t, cwi.Schedule, 1)
	assert.Equal(t, "Monday", cwi.Schedule[0].DayOfWeek)
}

func TestFindClassByID_NotFound(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	mock.ExpectQuery("SELECT (.+) FROM classes c(.+)JOIN instructors i").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(classWithInstructorRows))

	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestListClasses_AttachesSchedules(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM classes c(.+)JOIN instructors i").
		WillReturnRows(sqlmock.NewRows(classWithInstructorRows).
			AddRow("class-1", "Morning HIIT", "", "instructor-1", 45, 12, "intermediate", `{}`, `{}`, true, now, "Sarah Johnson").
			AddRow("class-2", "Power Yoga", "", "instructor-2", 60, 20, "beginner", `{}`, `{}`, true, now, "Mike Chen"))
	mock.ExpectQuery("SELECT (.+) FROM class_schedules").
		WillReturnRows(sqlmock.NewRows(scheduleRows).
			AddRow("sched-1", "class-1", "Monday", "06:30", "07:15").
			AddRow("sched-2", "class-2", "Tuesday", "18:00", "19:00").
			AddRow("sched-3", "class-2", "Thursday", "18:00", "19:00"))

	classes, err := repo.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Len(t, classes[0].Schedule, 1)
	assert.Len(t, classes[1].Schedule, 2)
}

func TestListClasses_EmptySchedulesAreNotNil(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM classes c(.+)JOIN instructors i").
		WillReturnRows(sqlmock.NewRows(classWithInstructorRows).
			AddRow("class-1", "Open Gym", "", "instructor-1", 60, 30, "beginner", `{}`, `{}`, true, now, "Sarah Johnson"))
	mock.ExpectQuery("SELECT (.+) FROM class_schedules").
		WillReturnRows(sqlmock.NewRows(scheduleRows))

	classes, err := repo.List(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.NotNil(t, classes[0].Schedule)
	assert.Empty(t, classes[0].Schedule)
}

func TestUpdateClass_ReplacesSchedule(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE classes").
		WillReturnRows(sqlmock.NewRows(classRows).AddRow(
			"class-1", "Evening HIIT", "", "instructor-1", 45, 15, "advanced",
			`{}`, `{}`, true, now,
		))
	mock.ExpectExec("DELETE FROM class_schedules").
		WithArgs("class-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO class_schedules").
		WithArgs(sqlmock.AnyArg(), "class-1", "Friday", "19:00", "19:45").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), &Class{
		ID:           "class-1",
		Name:         "Evening HIIT",
		InstructorID: "instructor-1",
		Duration:     45,
		Capacity:     15,
		Difficulty:   DifficultyAdvanced,
		IsActive:     true,
	}, []Schedule{{DayOfWeek: "Friday", StartTime: "19:00", EndTime: "19:45"}})

	require.NoError(t, err)
	assert.Equal(t, 15, updated.Capacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClass_NilScheduleKeepsExisting(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE classes").
		WillReturnRows(sqlmock.NewRows(classRows).AddRow(
			"class-1", "Morning HIIT", "", "instructor-1", 45, 12, "intermediate",
			`{}`, `{}`, false, now,
		))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), &Class{
		ID:           "class-1",
		Name:         "Morning HIIT",
		InstructorID: "instructor-1",
		Duration:     45,
		Capacity:     12,
		Difficulty:   DifficultyIntermediate,
	}, nil)

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClass_MissingIsNoop(t *testing.T) {
	repo, mock, closeDB := setupClassMock(t)
	defer closeDB()

	mock.ExpectExec("DELETE FROM classes").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")

	assert.NoError(t, err)
}
