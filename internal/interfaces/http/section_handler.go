package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/dto"
	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// SectionHandler maneja los datos por sección, el avance de progreso y la
// navegación del flujo de onboarding.
type SectionHandler struct {
	sections     *onboarding.SectionUseCase
	progress     *onboarding.ProgressUseCase
	requirements *onboarding.RequirementsUseCase
}

// NewSectionHandler construye el handler de secciones.
func NewSectionHandler(
	sections *onboarding.SectionUseCase,
	progress *onboarding.ProgressUseCase,
	requirements *onboarding.RequirementsUseCase,
) *SectionHandler {
	return &SectionHandler{sections: sections, progress: progress, requirements: requirements}
}

// parseSection lee y valida el path param :section. Devuelve ("", false) con
// la respuesta 400 ya escrita cuando el nombre no es una sección conocida.
func parseSection(c *fiber.Ctx) (entity.Section, bool) {
	section, ok := entity.ParseSection(c.Params("section"))
	if !ok {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SECTION", Message: "sección desconocida: " + c.Params("section")})
		return "", false
	}
	return section, true
}

// Save godoc
// @Summary      Guardar datos de una sección
// @Description  Reemplaza el payload completo de la sección (last write wins). El primer guardado de basic crea el perfil.
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        section  path  string                  true  "nombre de la sección"
// @Param        body     body  dto.SaveSectionRequest  true  "payload de la sección"
// @Success      200      {object}  dto.SectionResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/onboarding/sections/{section} [put]
func (h *SectionHandler) Save(c *fiber.Ctx) error {
	section, ok := parseSection(c)
	if !ok {
		return nil
	}
	var in dto.SaveSectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.sections.Save(c.Context(), GetUserID(c), section, in.Data)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toSectionResponse(record))
}

// Get godoc
// @Summary      Obtener datos de una sección
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        section  path  string  true  "nombre de la sección"
// @Success      200      {object}  dto.SectionResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/onboarding/sections/{section} [get]
func (h *SectionHandler) Get(c *fiber.Ctx) error {
	section, ok := parseSection(c)
	if !ok {
		return nil
	}
	record, err := h.sections.Get(c.Context(), GetUserID(c), section)
	if err != nil {
		return errorJSON(c, err)
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la sección no tiene datos guardados"})
	}
	return c.JSON(toSectionResponse(record))
}

// GetAll godoc
// @Summary      Listar todas las secciones guardadas
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.SectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/sections [get]
func (h *SectionHandler) GetAll(c *fiber.Ctx) error {
	records, err := h.sections.GetAll(c.Context(), GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	out := make([]dto.SectionResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toSectionResponse(r))
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar una sección como completada
// @Description  Agrega la sección al conjunto de completadas y avanza el puntero de progreso.
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        section  path  string  true  "nombre de la sección"
// @Success      200      {object}  dto.ProgressResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/onboarding/sections/{section}/complete [post]
func (h *SectionHandler) Complete(c *fiber.Ctx) error {
	section, ok := parseSection(c)
	if !ok {
		return nil
	}
	progress, err := h.progress.MarkStepComplete(c.Context(), GetUserID(c), section)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toProgressResponse(progress))
}

// Progress godoc
// @Summary      Consultar el progreso del onboarding
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProgressResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/progress [get]
func (h *SectionHandler) Progress(c *fiber.Ctx) error {
	progress, err := h.progress.Get(c.Context(), GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	if progress == nil {
		// Sin pasos completados aún: el puntero reporta la primera sección.
		return c.JSON(dto.ProgressResponse{
			CurrentStep:    entity.SectionOrder[0],
			CompletedSteps: []entity.Section{},
		})
	}
	return c.JSON(toProgressResponse(progress))
}

// Navigation godoc
// @Summary      Secciones vecinas en el orden fijo
// @Tags         onboarding
// @Produce      json
// @Param        section  path  string  true  "nombre de la sección"
// @Success      200      {object}  dto.NavigationResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/onboarding/sections/{section}/navigation [get]
func (h *SectionHandler) Navigation(c *fiber.Ctx) error {
	section, ok := parseSection(c)
	if !ok {
		return nil
	}
	return c.JSON(dto.NavigationResponse{
		Section:  section,
		Next:     section.Next(),
		Previous: section.Previous(),
	})
}

// Requirements godoc
// @Summary      Evaluar los requisitos documentales de una sección
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        section  path  string  true  "nombre de la sección"
// @Success      200      {object}  dto.SectionRequirementsResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/onboarding/sections/{section}/requirements [get]
func (h *SectionHandler) Requirements(c *fiber.Ctx) error {
	section, ok := parseSection(c)
	if !ok {
		return nil
	}
	req, err := h.requirements.CheckSection(c.Context(), GetUserID(c), section)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toRequirementsResponse(req))
}

// CanProceed godoc
// @Summary      Consultar si la sección permite avanzar
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        section  path  string  true  "nombre de la sección"
// @Success      200      {object}  dto.CanProceedResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/onboarding/sections/{section}/can-proceed [get]
func (h *SectionHandler) CanProceed(c *fiber.Ctx) error {
	section, ok := parseSection(c)
	if !ok {
		return nil
	}
	canProceed, err := h.requirements.CanProceedToNextSection(c.Context(), GetUserID(c), section)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.CanProceedResponse{Section: section, CanProceed: canProceed})
}
