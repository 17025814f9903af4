package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/auth"
	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/application/usecase"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProfileUC      *usecase.ProfileUseCase
	SectionUC      *onboarding.SectionUseCase
	ProgressUC     *onboarding.ProgressUseCase
	RequirementsUC *onboarding.RequirementsUseCase
	DocumentUC     *onboarding.DocumentUseCase
	AgreementUC    *onboarding.AgreementUseCase
	StatusUC       *onboarding.StatusUseCase
	CatalogRepo    repository.MandatoryDocumentRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogos de referencia (público: data estática, sin tenancy)
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogRepo)
	catalog.Get("/sections", catalogHandler.Sections)
	catalog.Get("/document-types", catalogHandler.DocumentTypes)
	catalog.Get("/agreement-types", catalogHandler.AgreementTypes)
	catalog.Get("/mandatory-documents", catalogHandler.Rules)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil de empresa (protegido)
	profile := protected.Group("/profile")
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Post("/", profileHandler.Create)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Post("/complete", profileHandler.Complete)

	// Onboarding (protegido)
	ob := protected.Group("/onboarding")

	sectionHandler := NewSectionHandler(deps.SectionUC, deps.ProgressUC, deps.RequirementsUC)
	ob.Get("/sections", sectionHandler.GetAll)
	ob.Put("/sections/:section", sectionHandler.Save)
	ob.Get("/sections/:section", sectionHandler.Get)
	ob.Post("/sections/:section/complete", sectionHandler.Complete)
	ob.Get("/sections/:section/navigation", sectionHandler.Navigation)
	ob.Get("/sections/:section/requirements", sectionHandler.Requirements)
	ob.Get("/sections/:section/can-proceed", sectionHandler.CanProceed)
	ob.Get("/progress", sectionHandler.Progress)

	documentHandler := NewDocumentHandler(deps.DocumentUC)
	ob.Post("/documents", documentHandler.Upload)
	ob.Get("/documents", documentHandler.List)
	ob.Delete("/documents/:id", documentHandler.Delete)

	agreementHandler := NewAgreementHandler(deps.AgreementUC)
	ob.Get("/agreements", agreementHandler.List)
	ob.Post("/agreements/:agreement/sign", agreementHandler.Sign)
	ob.Get("/agreements/:agreement", agreementHandler.Status)

	statusHandler := NewStatusHandler(deps.StatusUC)
	ob.Get("/status", statusHandler.Overall)
}
