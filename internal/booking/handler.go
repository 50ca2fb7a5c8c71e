package booking

import (
	"errors"
	"net/http"
	"time"

	"topdog/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// BookClass godoc
// @Summary      Book a class
// @Description  Books a spot in a class occurrence. A full class places the
// @Description  booking on the waitlist instead of rejecting it.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        classID  path      string       true  "Class ID"
// @Param        request  body      BookRequest  true  "Occurrence to book"
// @Success      201      {object}  Booking
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /classes/{classID}/book [post]
func (h *Handler) BookClass(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.ClassDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class date"})
		return
	}

	booking, err := h.service.BookClass(c.Request.Context(), memberID, c.Param("classID"), date, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case errors.Is(err, ErrClassInactive), errors.Is(err, ErrDateInPast):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrAlreadyBooked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings godoc
// @Summary      List my bookings
// @Description  Returns the member's bookings with class and instructor names.
// @Description  Waitlisted bookings carry their derived waitlist position.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string][]BookingWithClass
// @Failure      500  {object}  gin.H
// @Router       /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	bookings, err := h.service.ListMemberBookings(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Cancels one of the member's bookings. Cancelled bookings
// @Description  cannot be re-activated.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  CancelResponse
// @Failure      403        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Failure      409        {object}  gin.H
// @Failure      500        {object}  gin.H
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	err := h.service.CancelBooking(c.Request.Context(), memberID, c.Param("bookingID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, CancelResponse{Message: "Booking cancelled successfully"})
}
