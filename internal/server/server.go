package server

import (
	"context"
	"net/http"

	"topdog/internal/auth"
	"topdog/internal/booking"
	"topdog/internal/checkin"
	"topdog/internal/class"
	"topdog/internal/config"
	"topdog/internal/email"
	"topdog/internal/instructor"
	"topdog/internal/logger"
	"topdog/internal/member"
	"topdog/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	memberRepo := member.NewRepository(db)
	instructorRepo := instructor.NewRepository(db)
	classRepo := class.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	checkinRepo := checkin.NewRepository(db)

	notifier := auth.NewNotifier()
	var gateway auth.Gateway
	if cfg.ProviderConfigured() {
		gateway = member.NewAuthGateway(memberRepo, cfg.JWTSecret, notifier)
	} else {
		logger.Info("Provider credentials are placeholders, running with the demo auth gateway")
		gateway = auth.NewDemoGateway(cfg.JWTSecret, notifier)
	}

	memberHandler := member.NewHandler(memberRepo, gateway, cfg.JWTSecret, emailService)
	instructorHandler := instructor.NewHandler(instructorRepo)
	classHandler := class.NewHandler(classRepo)
	bookingService := booking.NewService(bookingRepo, classRepo, memberRepo, emailService)
	bookingHandler := booking.NewHandler(bookingService)
	paymentHandler := payment.NewHandler(paymentRepo, memberRepo, emailService)
	checkinHandler := checkin.NewHandler(checkinRepo, bookingRepo)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", memberHandler.Register)
		public.POST("/login", memberHandler.Login)
		public.POST("/refresh", memberHandler.RefreshToken)
	}

	router.GET("/classes", classHandler.ListClasses)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", memberHandler.GetMe)
		protected.POST("/auth/logout", memberHandler.Logout)
		protected.GET("/classes/:classID", classHandler.GetClass)
		protected.POST("/classes/:classID/book", bookingHandler.BookClass)
		protected.GET("/bookings", bookingHandler.ListBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
		protected.GET("/payments", paymentHandler.ListMyPayments)
		protected.GET("/checkins", checkinHandler.ListCheckIns)
		protected.POST("/checkins", checkinHandler.CheckIn)
		protected.POST("/checkins/:checkInID/out", checkinHandler.CheckOut)
		protected.GET("/stats", checkinHandler.GetStats)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.GET("/members", memberHandler.ListMembers)
		admin.GET("/members/:memberID", memberHandler.GetMember)
		admin.PUT("/members/:memberID", memberHandler.UpdateMember)
		admin.DELETE("/members/:memberID", memberHandler.DeleteMember)

		admin.GET("/instructors", instructorHandler.ListInstructors)
		admin.GET("/instructors/:instructorID", instructorHandler.GetInstructor)
		admin.POST("/instructors", instructorHandler.CreateInstructor)
		admin.PUT("/instructors/:instructorID", instructorHandler.UpdateInstructor)
		admin.DELETE("/instructors/:instructorID", instructorHandler.DeleteInstructor)

		admin.GET("/classes", classHandler.ListClasses)
		admin.POST("/classes", classHandler.CreateClass)
		admin.PUT("/classes/:classID", classHandler.UpdateClass)
		admin.DELETE("/classes/:classID", classHandler.DeleteClass)

		admin.GET("/payments", paymentHandler.ListPayments)
		admin.POST("/payments", paymentHandler.CreatePayment)
		admin.GET("/analytics/revenue", paymentHandler.RevenueAnalytics)

		admin.GET("/overview", Overview(memberRepo, instructorRepo, classRepo, paymentRepo))
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
