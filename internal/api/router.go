package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/khushalpatil0812/future-tech-career/internal/api/handler"
	"github.com/khushalpatil0812/future-tech-career/internal/api/middleware"
	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/service"
	mongorepo "github.com/khushalpatil0812/future-tech-career/internal/infrastructure/db/mongo"
	redisinfra "github.com/khushalpatil0812/future-tech-career/internal/infrastructure/db/redis"
	"github.com/khushalpatil0812/future-tech-career/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("career"))

	// --- Repositories ---
	authRepo := mongorepo.NewAuthRepository(db)
	clientRepo := mongorepo.NewClientRepository(db)
	contractRepo := mongorepo.NewContractRepository(db)
	requirementRepo := mongorepo.NewRequirementRepository(db)
	companyRepo := mongorepo.NewCompanyRepository(db)
	openingRepo := mongorepo.NewJobOpeningRepository(db)
	candidateRepo := mongorepo.NewCandidateRepository(db)
	feedbackRepo := mongorepo.NewFeedbackRepository(db)
	testimonialRepo := mongorepo.NewTestimonialRepository(db)
	inquiryRepo := mongorepo.NewInquiryRepository(db)
	testimonialCache := redisinfra.NewTestimonialCache(rdb)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(authRepo, tokens, cfg.AdminSecretKey, log)
	clientService := service.NewClientService(clientRepo, log)
	contractService := service.NewContractService(contractRepo, clientRepo, log)
	requirementService := service.NewRequirementService(requirementRepo, clientRepo, log)
	companyService := service.NewCompanyService(companyRepo, log)
	openingService := service.NewJobOpeningService(openingRepo, companyRepo, log)
	candidateService := service.NewCandidateService(candidateRepo, openingRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, testimonialCache, log)
	testimonialService := service.NewTestimonialService(testimonialRepo, testimonialCache, log)
	inquiryService := service.NewInquiryService(inquiryRepo, log)
	dashboardService := service.NewDashboardService(inquiryRepo, feedbackRepo, testimonialRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	contractHandler := handler.NewContractHandler(contractService)
	requirementHandler := handler.NewRequirementHandler(requirementService)
	companyHandler := handler.NewCompanyHandler(companyService)
	openingHandler := handler.NewJobOpeningHandler(openingService)
	candidateHandler := handler.NewCandidateHandler(candidateService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/feedback", feedbackHandler.Submit)
	e.POST("/api/inquiries", inquiryHandler.Submit)
	e.GET("/api/testimonials", testimonialHandler.Public)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Admin routes ---
	readRoles := []string{domain.RoleAdmin, domain.RoleViewer}

	admin := e.Group("/api/admin", middleware.Authenticate(tokens))
	read := middleware.RequireRole(readRoles...)
	write := middleware.RequireRole(domain.RoleAdmin)

	admin.GET("/dashboard", dashboardHandler.Stats, read)

	admin.GET("/inquiries", inquiryHandler.List, read)
	admin.PATCH("/inquiries/:id/read", inquiryHandler.MarkRead, write)
	admin.DELETE("/inquiries/:id", inquiryHandler.Delete, write)

	admin.GET("/clients", clientHandler.List, read)
	admin.GET("/clients/active", clientHandler.ListActive, read)
	admin.GET("/clients/:id", clientHandler.Get, read)
	admin.POST("/clients", clientHandler.Create, write)
	admin.PUT("/clients/:id", clientHandler.Update, write)
	admin.PATCH("/clients/:id/toggle-status", clientHandler.ToggleStatus, write)
	admin.DELETE("/clients/:id", clientHandler.Delete, write)

	admin.GET("/contracts", contractHandler.List, read)
	admin.GET("/contracts/expiring", contractHandler.ListExpiring, read)
	admin.GET("/contracts/:id", contractHandler.Get, read)
	admin.POST("/contracts", contractHandler.Create, write)
	admin.PUT("/contracts/:id", contractHandler.Update, write)
	admin.PATCH("/contracts/:id/status", contractHandler.UpdateStatus, write)
	admin.DELETE("/contracts/:id", contractHandler.Delete, write)

	admin.GET("/resource-requirements", requirementHandler.List, read)
	admin.GET("/resource-requirements/open", requirementHandler.ListOpen, read)
	admin.GET("/resource-requirements/:id", requirementHandler.Get, read)
	admin.POST("/resource-requirements", requirementHandler.Create, write)
	admin.PUT("/resource-requirements/:id", requirementHandler.Update, write)
	admin.PATCH("/resource-requirements/:id/status", requirementHandler.UpdateStatus, write)
	admin.DELETE("/resource-requirements/:id", requirementHandler.Delete, write)

	admin.GET("/companies", companyHandler.List, read)
	admin.GET("/companies/:id", companyHandler.Get, read)
	admin.POST("/companies", companyHandler.Create, write)
	admin.PUT("/companies/:id", companyHandler.Update, write)
	admin.DELETE("/companies/:id", companyHandler.Delete, write)

	admin.GET("/job-openings", openingHandler.List, read)
	admin.GET("/job-openings/:id", openingHandler.Get, read)
	admin.POST("/job-openings", openingHandler.Create, write)
	admin.PUT("/job-openings/:id", openingHandler.Update, write)
	admin.PATCH("/job-openings/:id/toggle-status", openingHandler.ToggleStatus, write)
	admin.DELETE("/job-openings/:id", openingHandler.Delete, write)

	admin.GET("/candidates", candidateHandler.List, read)
	admin.GET("/candidates/:id", candidateHandler.Get, read)
	admin.POST("/candidates", candidateHandler.Create, write)
	admin.PUT("/candidates/:id", candidateHandler.Update, write)
	admin.PATCH("/candidates/:id/interview-stage", candidateHandler.UpdateInterviewStage, write)
	admin.PATCH("/candidates/:id/hr-notes", candidateHandler.UpdateHRNotes, write)
	admin.DELETE("/candidates/:id", candidateHandler.Delete, write)

	admin.GET("/feedback", feedbackHandler.List, read)
	admin.POST("/feedback/:id/approve", feedbackHandler.Approve, write)
	admin.POST("/feedback/:id/reject", feedbackHandler.Reject, write)

	admin.GET("/testimonials", testimonialHandler.List, read)
	admin.PUT("/testimonials/:id", testimonialHandler.Update, write)
	admin.DELETE("/testimonials/:id", testimonialHandler.Delete, write)

	return e
}
