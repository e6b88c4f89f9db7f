package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/insuretrack/insuretrack-api/internal/application/auth"
	appcoi "github.com/insuretrack/insuretrack-api/internal/application/coi"
	compliancecheck "github.com/insuretrack/insuretrack-api/internal/application/compliance"
	"github.com/insuretrack/insuretrack-api/internal/application/usecase"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ContractorUC *usecase.ContractorUseCase
	ProjectUC    *usecase.ProjectUseCase
	SubUC        *usecase.ProjectSubcontractorUseCase
	BrokerUC     *usecase.BrokerUseCase
	TradeUC      *usecase.TradeUseCase
	DocumentUC   *usecase.DocumentUseCase
	ComplianceUC *compliancecheck.CheckUseCase
	COIUC        *appcoi.COIUseCase
	JWTSecret    string
}

// Router registers the API routes. Auth endpoints get a tight rate limit
// (5/min per IP) on top of the global one to slow down credential stuffing.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (public, tightly rate limited)
	authLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: time.Minute,
	})
	authGroup := api.Group("/auth", authLimiter)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	adminOnly := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin)
	adminOrGC := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleGC)
	adminGCOrBroker := RequireRole(entity.RoleSuperAdmin, entity.RoleAdmin, entity.RoleGC, entity.RoleBroker)

	// Contractors
	contractors := protected.Group("/contractors")
	contractorHandler := NewContractorHandler(deps.ContractorUC)
	contractors.Post("/", adminOrGC, contractorHandler.Create)
	contractors.Get("/", contractorHandler.List)
	contractors.Get("/:id", contractorHandler.GetByID)
	contractors.Put("/:id", adminOrGC, contractorHandler.Update)
	contractors.Delete("/:id", adminOnly, contractorHandler.Delete)

	// Projects and their assignments
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.SubUC)
	projects.Post("/", adminOrGC, projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", adminOrGC, projectHandler.Update)
	projects.Delete("/:id", adminOnly, projectHandler.Delete)
	projects.Post("/:id/subcontractors", adminOrGC, projectHandler.AssignSubcontractor)
	projects.Get("/:id/subcontractors", projectHandler.ListSubcontractors)

	// Project subcontractors, documents, compliance, certificates
	subs := protected.Group("/subcontractors")
	subHandler := NewSubcontractorHandler(deps.SubUC, deps.DocumentUC)
	complianceHandler := NewComplianceHandler(deps.ComplianceUC)
	coiHandler := NewCOIHandler(deps.COIUC)
	subs.Get("/:id", subHandler.GetByID)
	subs.Put("/:id", adminOrGC, subHandler.Update)
	subs.Delete("/:id", adminOrGC, subHandler.Remove)
	subs.Post("/:id/documents", adminGCOrBroker, subHandler.CreateDocument)
	subs.Get("/:id/documents", subHandler.ListDocuments)
	subs.Post("/:id/compliance-check", adminOnly, complianceHandler.RunCheck)
	subs.Get("/:id/compliance-checks", complianceHandler.History)
	subs.Post("/:id/coi", adminGCOrBroker, coiHandler.Generate)
	subs.Get("/:id/coi", coiHandler.GetLatest)

	// Documents review
	protected.Post("/documents/:docId/review", adminOnly, subHandler.ReviewDocument)

	// Compliance utilities
	protected.Get("/compliance-checks/:id", complianceHandler.GetCheck)
	protected.Post("/compliance/requirements", complianceHandler.ResolveRequirements)

	// Certificate export and downloads
	protected.Post("/coi/acord-xml", adminGCOrBroker, coiHandler.ExportXML)
	protected.Get("/coi/files/:filename", coiHandler.Download)

	// Brokers
	brokers := protected.Group("/brokers")
	brokerHandler := NewBrokerHandler(deps.BrokerUC)
	brokers.Post("/", adminOnly, brokerHandler.Create)
	brokers.Get("/", brokerHandler.List)
	brokers.Get("/:id", brokerHandler.GetByID)
	brokers.Put("/:id", adminOnly, brokerHandler.Update)
	brokers.Delete("/:id", adminOnly, brokerHandler.Delete)

	// Trade catalog
	trades := protected.Group("/trades")
	tradeHandler := NewTradeHandler(deps.TradeUC)
	trades.Post("/", adminOnly, tradeHandler.Create)
	trades.Get("/", tradeHandler.List)
	trades.Get("/:id", tradeHandler.GetByID)
	trades.Put("/:id", adminOnly, tradeHandler.Update)
	trades.Delete("/:id", adminOnly, tradeHandler.Delete)
}
