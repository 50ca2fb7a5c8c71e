package instructor

import (
	"time"

	"github.com/lib/pq"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Instructor struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	Specialties  pq.StringArray `db:"specialties" json:"specialties"`
	Bio          string         `db:"bio" json:"bio"`
	Experience   int            `db:"experience_years" json:"experience_years"`
	Rating       float64        `db:"rating" json:"rating"`
	TotalClasses int            `db:"total_classes" json:"total_classes"`
	JoinDate     time.Time      `db:"join_date" json:"join_date"`
	Status       Status         `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Specialties []string `json:"specialties"`
	Bio         string   `json:"bio"`
	Experience  int      `json:"experience_years" binding:"omitempty,gte=0"`
	Rating      float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

type UpdateRequest struct {
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Bio         string   `json:"bio"`
	Experience  int      `json:"experience_years" binding:"omitempty,gte=0"`
	Rating      float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Status      string   `json:"status" binding:"omitempty,oneof=active inactive"`
}
