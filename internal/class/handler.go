package class

import (
	"net/http"
	"strings"

	"topdog/internal/filter"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListClasses godoc
// @Summary      List classes
// @Description  Returns the class catalog with instructor names and weekly schedules,
// @Description  filtered by free-text search and difficulty.
// @Tags         classes
// @Produce      json
// @Param        q           query     string  false  "Search by class name, instructor name or tag"
// @Param        difficulty  query     string  false  "Difficulty (beginner, intermediate, advanced or all)"
// @Param        active      query     string  false  "Set to false to include inactive classes"
// @Success      200         {object}  map[string]interface{}
// @Failure      500         {object}  gin.H
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	onlyActive := c.DefaultQuery("active", "true") != "false"

	classes, err := h.repo.List(c.Request.Context(), onlyActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}

	filtered := filter.Apply(classes,
		filter.Text(c.Query("q"),
			func(cls ClassWithInstructor) string { return cls.Name },
			func(cls ClassWithInstructor) string { return cls.InstructorName },
			func(cls ClassWithInstructor) string { return strings.Join(cls.Tags, " ") },
		),
		filter.Equals(c.DefaultQuery("difficulty", filter.All), func(cls ClassWithInstructor) string { return string(cls.Difficulty) }),
	)

	c.JSON(http.StatusOK, gin.H{
		"classes": filtered,
		"stats":   ComputeStats(classes),
	})
}

// GetClass godoc
// @Summary      Get class by ID
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        classID  path      string  true  "Class ID"
// @Success      200      {object}  ClassWithInstructor
// @Failure      404      {object}  gin.H
// @Router       /classes/{classID} [get]
func (h *Handler) GetClass(c *gin.Context) {
	cwi, err := h.repo.FindByID(c.Request.Context(), c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	c.JSON(http.StatusOK, cwi)
}

// CreateClass godoc
// @Summary      Create class
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Class data"
// @Success      201      {object}  Class
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), &Class{
		Name:         req.Name,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		Duration:     req.Duration,
		Capacity:     req.Capacity,
		Difficulty:   Difficulty(req.Difficulty),
		Equipment:    pq.StringArray(req.Equipment),
		Tags:         pq.StringArray(req.Tags),
	}, toSchedules(req.Schedule))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateClass godoc
// @Summary      Update class
// @Description  Updates class fields; a schedule in the payload replaces the weekly schedule.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        classID  path      string         true  "Class ID"
// @Param        request  body      UpdateRequest  true  "Fields to update"
// @Success      200      {object}  Class
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /admin/classes/{classID} [put]
func (h *Handler) UpdateClass(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.repo.FindByID(c.Request.Context(), c.Param("classID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		return
	}

	cls := existing.Class
	if req.Name != "" {
		cls.Name = req.Name
	}
	if req.Description != "" {
		cls.Description = req.Description
	}
	if req.InstructorID != "" {
		cls.InstructorID = req.InstructorID
	}
	if req.Duration != 0 {
		cls.Duration = req.Duration
	}
	if req.Capacity != 0 {
		cls.Capacity = req.Capacity
	}
	if req.Difficulty != "" {
		cls.Difficulty = Difficulty(req.Difficulty)
	}
	if req.Equipment != nil {
		cls.Equipment = pq.StringArray(req.Equipment)
	}
	if req.Tags != nil {
		cls.Tags = pq.StringArray(req.Tags)
	}
	if req.IsActive != nil {
		cls.IsActive = *req.IsActive
	}

	var schedule []Schedule
	if req.Schedule != nil {
		schedule = toSchedules(req.Schedule)
	}

	updated, err := h.repo.Update(c.Request.Context(), &cls, schedule)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteClass godoc
// @Summary      Delete class
// @Description  Removes a class and its schedule. Deleting an unknown class succeeds.
// @Tags         admin
// @Security     BearerAuth
// @Param        classID  path  string  true  "Class ID"
// @Success      204
// @Failure      500  {object}  gin.H
// @Router       /admin/classes/{classID} [delete]
func (h *Handler) DeleteClass(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("classID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}

	c.Status(http.StatusNoContent)
}

func toSchedules(reqs []ScheduleRequest) []Schedule {
	schedules := make([]Schedule, 0, len(reqs))
	for _, r := range reqs {
		schedules = append(schedules, Schedule{
			DayOfWeek: r.DayOfWeek,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	return schedules
}
