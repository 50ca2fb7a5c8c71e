package instructor

import (
	"net/http"

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

// ListInstructors godoc
// @Summary      List instructors
// @Description  Returns instructors filtered by free-text search and status. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        q       query     string  false  "Search by name, email or specialty"
// @Param        status  query     string  false  "Instructor status (active, inactive or all)"
// @Success      200     {object}  map[string]interface{}
// @Failure      500     {object}  gin.H
// @Router       /admin/instructors [get]
func (h *Handler) ListInstructors(c *gin.Context) {
	instructors, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch instructors"})
		return
	}

	filtered := filter.Apply(instructors,
		filter.Text(c.Query("q"),
			func(i Instructor) string { return i.Name },
			func(i Instructor) string { return i.Email },
			func(i Instructor) string { return joinSpecialties(i) },
		),
		filter.Equals(c.DefaultQuery("status", filter.All), func(i Instructor) string { return string(i.Status) }),
	)

	c.JSON(http.StatusOK, gin.H{
		"instructors": filtered,
		"stats":       ComputeStats(instructors),
	})
}

// GetInstructor godoc
// @Summary      Get instructor by ID
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        instructorID  path      string  true  "Instructor ID"
// @Success      200           {object}  Instructor
// @Failure      404           {object}  gin.H
// @Router       /admin/instructors/{instructorID} [get]
func (h *Handler) GetInstructor(c *gin.Context) {
	i, err := h.repo.FindByID(c.Request.Context(), c.Param("instructorID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		return
	}

	c.JSON(http.StatusOK, i)
}

// CreateInstructor godoc
// @Summary      Create instructor
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Instructor data"
// @Success      201      {object}  Instructor
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/instructors [post]
func (h *Handler) CreateInstructor(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), &Instructor{
		Name:        req.Name,
		Email:       req.Email,
		Specialties: pq.StringArray(req.Specialties),
		Bio:         req.Bio,
		Experience:  req.Experience,
		Rating:      req.Rating,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create instructor"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateInstructor godoc
// @Summary      Update instructor
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        instructorID  path      string         true  "Instructor ID"
// @Param        request       body      UpdateRequest  true  "Fields to update"
// @Success      200           {object}  Instructor
// @Failure      400           {object}  gin.H
// @Failure      404           {object}  gin.H
// @Router       /admin/instructors/{instructorID} [put]
func (h *Handler) UpdateInstructor(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	i, err := h.repo.FindByID(c.Request.Context(), c.Param("instructorID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
		return
	}

	if req.Name != "" {
		i.Name = req.Name
	}
	if req.Specialties != nil {
		i.Specialties = pq.StringArray(req.Specialties)
	}
	if req.Bio != "" {
		i.Bio = req.Bio
	}
	if req.Experience != 0 {
		i.Experience = req.Experience
	}
	if req.Rating != 0 {
		i.Rating = req.Rating
	}
	if req.Status != "" {
		i.Status = Status(req.Status)
	}

	updated, err := h.repo.Update(c.Request.Context(), i)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update instructor"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteInstructor godoc
// @Summary      Delete instructor
// @Description  Removes an instructor. Deleting an unknown instructor succeeds.
// @Tags         admin
// @Security     BearerAuth
// @Param        instructorID  path  string  true  "Instructor ID"
// @Success      204
// @Failure      500  {object}  gin.H
// @Router       /admin/instructors/{instructorID} [delete]
func (h *Handler) DeleteInstructor(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("instructorID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete instructor"})
		return
	}

	c.Status(http.StatusNoContent)
}

func joinSpecialties(i Instructor) string {
	joined := ""
	for _, s := range i.Specialties {
		joined += s + " "
	}
	return joined
}
