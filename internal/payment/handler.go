package payment

import (
	"net/http"
	"time"

	"topdog/internal/auth"
	"topdog/internal/email"
	"topdog/internal/filter"
	"topdog/internal/member"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo       Repository
	memberRepo member.Repository
	email      *email.Service
}

func NewHandler(repo Repository, memberRepo member.Repository, emailService *email.Service) *Handler {
	return &Handler{repo: repo, memberRepo: memberRepo, email: emailService}
}

// ListMyPayments godoc
// @Summary      List my payments
// @Description  Returns the member's payment history, newest first.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string][]Payment
// @Failure      500  {object}  gin.H
// @Router       /payments [get]
func (h *Handler) ListMyPayments(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	payments, err := h.repo.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// ListPayments godoc
// @Summary      List all payments
// @Description  Returns every payment with member details, filtered by free-text
// @Description  search, status and method. Revenue stats cover the whole
// @Description  collection, not the filtered page.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        q       query     string  false  "Search by member name, email or invoice"
// @Param        status  query     string  false  "Status (completed, pending, failed or all)"
// @Param        method  query     string  false  "Method (card, bank, cash or all)"
// @Success      200     {object}  map[string]interface{}
// @Failure      500     {object}  gin.H
// @Router       /admin/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	filtered := filter.Apply(payments,
		filter.Text(c.Query("q"),
			func(p PaymentWithMember) string { return p.MemberName },
			func(p PaymentWithMember) string { return p.MemberEmail },
			func(p PaymentWithMember) string {
				if p.Invoice != nil {
					return *p.Invoice
				}
				return ""
			},
		),
		filter.Equals(c.DefaultQuery("status", filter.All), func(p PaymentWithMember) string { return string(p.Status) }),
		filter.Equals(c.DefaultQuery("method", filter.All), func(p PaymentWithMember) string { return string(p.Method) }),
	)

	c.JSON(http.StatusOK, gin.H{
		"payments": filtered,
		"stats":    ComputeRevenueStats(stripMembers(payments)),
	})
}

// CreatePayment godoc
// @Summary      Record a payment
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRequest  true  "Payment data"
// @Success      201      {object}  Payment
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := &Payment{
		MemberID:    req.MemberID,
		AmountCents: req.AmountCents,
		Status:      Status(req.Status),
		Description: req.Description,
		PlanType:    PlanType(req.PlanType),
		Method:      Method(req.Method),
	}
	if req.Invoice != "" {
		p.Invoice = &req.Invoice
	}
	if req.PaidAt != "" {
		paidAt, err := time.Parse("2006-01-02", req.PaidAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paid_at date"})
			return
		}
		p.PaidAt = paidAt
	}

	created, err := h.repo.Create(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	if h.email != nil && created.Status == StatusCompleted {
		if m, err := h.memberRepo.FindByID(c.Request.Context(), created.MemberID); err == nil {
			invoice := ""
			if created.Invoice != nil {
				invoice = *created.Invoice
			}
			h.email.SendPaymentReceipt(c.Request.Context(), m.Email, m.FullName, created.Description, created.AmountCents, invoice)
		}
	}

	c.JSON(http.StatusCreated, created)
}

// RevenueAnalytics godoc
// @Summary      Revenue analytics
// @Description  Monthly revenue buckets and month-over-month growth for the
// @Description  admin financial dashboard.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  RevenueStats
// @Failure      500  {object}  gin.H
// @Router       /admin/analytics/revenue [get]
func (h *Handler) RevenueAnalytics(c *gin.Context) {
	payments, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, ComputeRevenueStats(stripMembers(payments)))
}

func stripMembers(payments []PaymentWithMember) []Payment {
	out := make([]Payment, len(payments))
	for i, p := range payments {
		out[i] = p.Payment
	}
	return out
}
