package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/farm-onboarding/internal/application/auth"
	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/application/usecase"
	"github.com/tu-usuario/farm-onboarding/internal/infrastructure/postgres"
	"github.com/tu-usuario/farm-onboarding/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/farm-onboarding/internal/interfaces/http"
	"github.com/tu-usuario/farm-onboarding/pkg/config"
	"github.com/tu-usuario/farm-onboarding/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewBusinessProfileRepository(pool)
	sectionRepo := postgres.NewSectionRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	agreementRepo := postgres.NewAgreementRepository(pool)
	progressRepo := postgres.NewProgressRepository(pool)
	mandatoryRepo := postgres.NewMandatoryDocumentRepository(pool)

	// File store: GCS en producción, disco local en desarrollo.
	var fileStore onboarding.FileStore
	switch cfg.Storage.Driver {
	case "gcs":
		gcs, err := storage.NewGCSStore(ctx, cfg.Storage.Bucket, cfg.Storage.CredentialsPath, cfg.Storage.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar GCS")
		}
		defer gcs.Close()
		fileStore = gcs
	default:
		local, err := storage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar almacenamiento local")
		}
		fileStore = local
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	profileUC := usecase.NewProfileUseCase(profileRepo)
	sectionUC := onboarding.NewSectionUseCase(profileRepo, sectionRepo)
	progressUC := onboarding.NewProgressUseCase(profileRepo, progressRepo)
	requirementsUC := onboarding.NewRequirementsUseCase(profileRepo, mandatoryRepo, documentRepo, onboarding.RequirementsConfig{
		CountUntagged: cfg.Requirements.CountUntagged,
	})
	documentUC := onboarding.NewDocumentUseCase(profileRepo, documentRepo, fileStore)
	agreementUC := onboarding.NewAgreementUseCase(profileRepo, agreementRepo)
	statusUC := onboarding.NewStatusUseCase(profileRepo, progressRepo, documentRepo, agreementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farm Onboarding API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProfileUC:      profileUC,
		SectionUC:      sectionUC,
		ProgressUC:     progressUC,
		RequirementsUC: requirementsUC,
		DocumentUC:     documentUC,
		AgreementUC:    agreementUC,
		StatusUC:       statusUC,
		CatalogRepo:    mandatoryRepo,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
