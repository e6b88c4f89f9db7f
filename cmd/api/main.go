package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/insuretrack/insuretrack-api/internal/application/auth"
	appcoi "github.com/insuretrack/insuretrack-api/internal/application/coi"
	compliancecheck "github.com/insuretrack/insuretrack-api/internal/application/compliance"
	"github.com/insuretrack/insuretrack-api/internal/application/usecase"
	"github.com/insuretrack/insuretrack-api/internal/infrastructure/acord"
	"github.com/insuretrack/insuretrack-api/internal/infrastructure/email"
	infrapdf "github.com/insuretrack/insuretrack-api/internal/infrastructure/pdf"
	"github.com/insuretrack/insuretrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/insuretrack/insuretrack-api/internal/interfaces/http"
	"github.com/insuretrack/insuretrack-api/pkg/config"
	"github.com/insuretrack/insuretrack-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	contractorRepo := postgres.NewContractorRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	subRepo := postgres.NewProjectSubcontractorRepository(pool)
	brokerRepo := postgres.NewBrokerRepository(pool)
	tradeRepo := postgres.NewTradeRepository(pool)
	docRepo := postgres.NewInsuranceDocumentRepository(pool)
	checkRepo := postgres.NewComplianceCheckRepository(pool)
	coiRepo := postgres.NewGeneratedCOIRepository(pool)

	mailer := email.NewSender(cfg.SMTP, cfg.App.BaseURL, log)
	renderer := infrapdf.NewACORD25Generator()
	exporter := acord.NewXMLExporter()

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	contractorUC := usecase.NewContractorUseCase(contractorRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo)
	subUC := usecase.NewProjectSubcontractorUseCase(subRepo, projectRepo)
	brokerUC := usecase.NewBrokerUseCase(brokerRepo)
	tradeUC := usecase.NewTradeUseCase(tradeRepo)
	documentUC := usecase.NewDocumentUseCase(docRepo, subRepo)
	complianceUC := compliancecheck.NewCheckUseCase(subRepo, projectRepo, brokerRepo, checkRepo, coiRepo, mailer, log)
	coiUC := appcoi.NewCOIUseCase(coiRepo, renderer, exporter, cfg.Uploads.Dir, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Global API rate limit; the auth group carries its own tighter one.
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
	}))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "INsuretrack API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ContractorUC: contractorUC,
		ProjectUC:    projectUC,
		SubUC:        subUC,
		BrokerUC:     brokerUC,
		TradeUC:      tradeUC,
		DocumentUC:   documentUC,
		ComplianceUC: complianceUC,
		COIUC:        coiUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
