package server

import (
	"net/http"

	"topdog/internal/class"
	"topdog/internal/instructor"
	"topdog/internal/member"
	"topdog/internal/metrics"
	"topdog/internal/payment"

	"github.com/gin-gonic/gin"
)

type OverviewResponse struct {
	Members     member.Stats         `json:"members"`
	Classes     class.Stats          `json:"classes"`
	Instructors instructor.Stats     `json:"instructors"`
	Revenue     payment.RevenueStats `json:"revenue"`
}

// Overview godoc
// @Summary      Admin dashboard overview
// @Description  Membership, class, instructor and revenue statistics in one
// @Description  call. Everything is recomputed from current data.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  OverviewResponse
// @Failure      500  {object}  gin.H
// @Router       /admin/overview [get]
func Overview(
	memberRepo member.Repository,
	instructorRepo instructor.Repository,
	classRepo class.Repository,
	paymentRepo payment.Repository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		members, err := memberRepo.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
			return
		}

		instructors, err := instructorRepo.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch instructors"})
			return
		}

		classes, err := classRepo.List(ctx, false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
			return
		}

		payments, err := paymentRepo.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}

		plain := make([]payment.Payment, len(payments))
		for i, p := range payments {
			plain[i] = p.Payment
		}

		memberStats := member.ComputeStats(members)
		metrics.ActiveMembers.Set(float64(memberStats.Active))

		c.JSON(http.StatusOK, OverviewResponse{
			Members:     memberStats,
			Classes:     class.ComputeStats(classes),
			Instructors: instructor.ComputeStats(instructors),
			Revenue:     payment.ComputeRevenueStats(plain),
		})
	}
}
