package member

import (
	"errors"
	"net/http"

	"topdog/internal/auth"
	"topdog/internal/email"
	"topdog/internal/filter"
	"topdog/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo      Repository
	gateway   auth.Gateway
	jwtSecret string
	email     *email.Service
}

func NewHandler(repo Repository, gateway auth.Gateway, jwtSecret string, emailService *email.Service) *Handler {
	return &Handler{
		repo:      repo,
		gateway:   gateway,
		jwtSecret: jwtSecret,
		email:     emailService,
	}
}

// Register godoc
// @Summary      Register new member
// @Description  Creates a member account and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Member registration data"
// @Success      201      {object}  SessionResponse
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.gateway.SignUp(c.Request.Context(), req.Email, req.Password, auth.ProfileData{
		FullName:   req.FullName,
		Age:        req.Age,
		Gender:     req.Gender,
		Occupation: req.Occupation,
		Phone:      req.Phone,
		Plan:       req.Plan,
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	plan := req.Plan
	if plan == "" {
		plan = string(PlanBasic)
	}
	metrics.RecordSignup(plan)

	if h.email != nil {
		h.email.SendWelcome(c.Request.Context(), req.Email, req.FullName, plan)
	}

	m, _ := h.repo.FindByID(c.Request.Context(), session.MemberID)
	c.JSON(http.StatusCreated, SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Member:       m,
	})
}

// Login godoc
// @Summary      Login member
// @Description  Authenticates a member by email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Member credentials"
// @Success      200      {object}  SessionResponse
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.gateway.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	m, _ := h.repo.FindByID(c.Request.Context(), session.MemberID)
	c.JSON(http.StatusOK, SessionResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Member:       m,
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Returns a new access token using a valid refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Refresh token payload"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
		return
	}

	newAccessToken, claims, err := auth.RefreshAccessToken(req.RefreshToken, h.jwtSecret, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": newAccessToken,
		"member_id":    claims.UserID,
	})
}

// Logout godoc
// @Summary      Logout member
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      401  {object}  gin.H
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	if err := h.gateway.SignOut(c.Request.Context(), memberID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// GetMe godoc
// @Summary      Get current member
// @Tags         member
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Member
// @Failure      401  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Member not authenticated"})
		return
	}

	if memberID == auth.DemoMemberID {
		email, _ := c.Get("member_email")
		c.JSON(http.StatusOK, demoProfile(email))
		return
	}

	m, err := h.repo.FindByID(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// ListMembers godoc
// @Summary      List members
// @Description  Returns members filtered by free-text search, status and plan. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        q       query     string  false  "Search by name or email"
// @Param        status  query     string  false  "Membership status (active, inactive, cancelled or all)"
// @Param        plan    query     string  false  "Membership plan (basic, premium or all)"
// @Success      200     {object}  map[string]interface{}
// @Failure      500     {object}  gin.H
// @Router       /admin/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}

	filtered := filter.Apply(members,
		filter.Text(c.Query("q"),
			func(m Member) string { return m.FullName },
			func(m Member) string { return m.Email },
		),
		filter.Equals(c.DefaultQuery("status", filter.All), func(m Member) string { return string(m.MembershipStatus) }),
		filter.Equals(c.DefaultQuery("plan", filter.All), func(m Member) string { return string(m.MembershipPlan) }),
	)

	c.JSON(http.StatusOK, gin.H{
		"members": filtered,
		"stats":   ComputeStats(members),
	})
}

// GetMember godoc
// @Summary      Get member by ID
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      string  true  "Member ID"
// @Success      200       {object}  Member
// @Failure      404       {object}  gin.H
// @Router       /admin/members/{memberID} [get]
func (h *Handler) GetMember(c *gin.Context) {
	m, err := h.repo.FindByID(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateMember godoc
// @Summary      Update member profile or membership
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      string         true  "Member ID"
// @Param        request   body      UpdateRequest  true  "Fields to update"
// @Success      200       {object}  Member
// @Failure      400       {object}  gin.H
// @Failure      404       {object}  gin.H
// @Router       /admin/members/{memberID} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.repo.FindByID(c.Request.Context(), c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	if req.FullName != "" {
		m.FullName = req.FullName
	}
	if req.Age != 0 {
		m.Age = req.Age
	}
	if req.Gender != "" {
		m.Gender = req.Gender
	}
	if req.Occupation != "" {
		m.Occupation = req.Occupation
	}
	if req.Phone != "" {
		m.Phone = req.Phone
	}
	if req.MembershipPlan != "" {
		m.MembershipPlan = Plan(req.MembershipPlan)
	}
	if req.MembershipStatus != "" {
		m.MembershipStatus = Status(req.MembershipStatus)
	}

	updated, err := h.repo.Update(c.Request.Context(), m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteMember godoc
// @Summary      Delete member
// @Description  Removes a member. Deleting an unknown member succeeds.
// @Tags         admin
// @Security     BearerAuth
// @Param        memberID  path  string  true  "Member ID"
// @Success      204
// @Failure      500  {object}  gin.H
// @Router       /admin/members/{memberID} [delete]
func (h *Handler) DeleteMember(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("memberID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	c.Status(http.StatusNoContent)
}

func demoProfile(email interface{}) *Member {
	addr, _ := email.(string)
	return &Member{
		ID:               auth.DemoMemberID,
		Email:            addr,
		FullName:         "Demo User",
		Role:             "member",
		MembershipPlan:   PlanPremium,
		MembershipStatus: StatusActive,
	}
}
