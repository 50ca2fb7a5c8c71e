package checkin

import (
	"errors"
	"net/http"
	"time"

	"topdog/internal/auth"
	"topdog/internal/booking"
	"topdog/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo        Repository
	bookingRepo booking.Repository
}

func NewHandler(repo Repository, bookingRepo booking.Repository) *Handler {
	return &Handler{repo: repo, bookingRepo: bookingRepo}
}

// CheckIn godoc
// @Summary      Check in to the gym
// @Tags         check-ins
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInRequest  false  "Facility"
// @Success      201      {object}  CheckIn
// @Failure      500      {object}  gin.H
// @Router       /checkins [post]
func (h *Handler) CheckIn(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	// Body is optional; an absent facility falls back to the default.
	var req CheckInRequest
	_ = c.ShouldBindJSON(&req)

	created, err := h.repo.Create(c.Request.Context(), &CheckIn{
		MemberID: memberID,
		Facility: req.Facility,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check in"})
		return
	}

	metrics.RecordCheckIn(created.Facility)
	c.JSON(http.StatusCreated, created)
}

// CheckOut godoc
// @Summary      Check out of the gym
// @Description  Closes an open visit and records its duration.
// @Tags         check-ins
// @Security     BearerAuth
// @Produce      json
// @Param        checkInID  path      string  true  "Check-in ID"
// @Success      200        {object}  CheckIn
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      409        {object}  gin.H
// @Router       /checkins/{checkInID}/out [post]
func (h *Handler) CheckOut(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	ci, err := h.repo.FindByID(c.Request.Context(), c.Param("checkInID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Check-in not found"})
		return
	}

	if ci.MemberID != memberID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Can only check out own visits"})
		return
	}

	closed, err := h.repo.CheckOut(c.Request.Context(), ci.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyCheckedOut):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, ErrCheckInNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Check-in not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check out"})
		}
		return
	}

	c.JSON(http.StatusOK, closed)
}

// ListCheckIns godoc
// @Summary      List my check-ins
// @Tags         check-ins
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string][]CheckIn
// @Failure      500  {object}  gin.H
// @Router       /checkins [get]
func (h *Handler) ListCheckIns(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	checkIns, err := h.repo.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"check_ins": checkIns})
}

// GetStats godoc
// @Summary      My visit statistics
// @Description  Check-in totals, streaks, hours attended and the member's
// @Description  most booked class.
// @Tags         check-ins
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Failure      500  {object}  gin.H
// @Router       /stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	checkIns, err := h.repo.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	stats := ComputeStats(checkIns, time.Now())

	if h.bookingRepo != nil {
		bookings, err := h.bookingRepo.ListByMember(c.Request.Context(), memberID)
		if err == nil {
			names := make([]string, 0, len(bookings))
			for _, b := range bookings {
				if b.Status != booking.StatusCancelled {
					names = append(names, b.ClassName)
				}
			}
			stats.FavoriteClass = FavoriteClass(names)
		}
	}

	c.JSON(http.StatusOK, stats)
}
