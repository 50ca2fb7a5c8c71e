package class

import (
	"time"

	"github.com/lib/pq"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Class references its instructor by id only; the display name is joined
// at read time so renaming an instructor never leaves stale copies.
type Class struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Description  string         `db:"description" json:"description"`
	InstructorID string         `db:"instructor_id" json:"instructor_id"`
	Duration     int            `db:"duration_minutes" json:"duration_minutes"`
	Capacity     int            `db:"capacity" json:"capacity"`
	Difficulty   Difficulty     `db:"difficulty" json:"difficulty"`
	Equipment    pq.StringArray `db:"equipment" json:"equipment"`
	Tags         pq.StringArray `db:"tags" json:"tags"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

type Schedule struct {
	ID        string `db:"id" json:"id"`
	ClassID   string `db:"class_id" json:"class_id"`
	DayOfWeek string `db:"day_of_week" json:"day_of_week"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
}

type ClassWithInstructor struct {
	Class
	InstructorName string     `db:"instructor_name" json:"instructor_name"`
	Schedule       []Schedule `json:"schedule"`
}

type CreateRequest struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	InstructorID string            `json:"instructor_id" binding:"required"`
	Duration     int               `json:"duration_minutes" binding:"required,min=1"`
	Capacity     int               `json:"capacity" binding:"required,min=1"`
	Difficulty   string            `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Equipment    []string          `json:"equipment"`
	Tags         []string          `json:"tags"`
	Schedule     []ScheduleRequest `json:"schedule" binding:"omitempty,dive"`
}

type ScheduleRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateRequest struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	InstructorID string            `json:"instructor_id"`
	Duration     int               `json:"duration_minutes" binding:"omitempty,min=1"`
	Capacity     int               `json:"capacity" binding:"omitempty,min=1"`
	Difficulty   string            `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Equipment    []string          `json:"equipment"`
	Tags         []string          `json:"tags"`
	IsActive     *bool             `json:"is_active"`
	Schedule     []ScheduleRequest `json:"schedule" binding:"omitempty,dive"`
}
