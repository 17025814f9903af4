package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/dto"
	"github.com/tu-usuario/farm-onboarding/internal/application/usecase"
)

// ProfileHandler maneja el perfil de empresa del usuario autenticado.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func profileInput(in dto.BusinessProfileRequest) usecase.ProfileInput {
	return usecase.ProfileInput{
		FullName:          in.FullName,
		TradingName:       in.TradingName,
		ABN:               in.ABN,
		ACN:               in.ACN,
		GSTRegistered:     in.GSTRegistered,
		MainContact:       in.MainContact,
		ContactEmails:     in.ContactEmails,
		ContactPhones:     in.ContactPhones,
		BusinessStructure: in.BusinessStructure,
	}
}

// Create godoc
// @Summary      Crear perfil de empresa
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BusinessProfileRequest  true  "datos del perfil"
// @Success      201   {object}  dto.BusinessProfileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/profile [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	var in dto.BusinessProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	profile, err := h.uc.Create(c.Context(), GetUserID(c), profileInput(in))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProfileResponse(profile))
}

// Get godoc
// @Summary      Obtener perfil de empresa
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BusinessProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.GetByUser(c.Context(), GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_PROFILE", Message: "el usuario no tiene perfil de empresa"})
	}
	return c.JSON(toProfileResponse(profile))
}

// Update godoc
// @Summary      Actualizar perfil de empresa
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.BusinessProfileRequest  true  "datos del perfil"
// @Success      200   {object}  dto.BusinessProfileResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.BusinessProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	profile, err := h.uc.Update(c.Context(), GetUserID(c), profileInput(in))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toProfileResponse(profile))
}

// Complete godoc
// @Summary      Marcar onboarding completado en el perfil
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BusinessProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile/complete [post]
func (h *ProfileHandler) Complete(c *fiber.Ctx) error {
	profile, err := h.uc.MarkOnboardingComplete(c.Context(), GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toProfileResponse(profile))
}
