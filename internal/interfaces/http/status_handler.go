package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
)

// StatusHandler expone la vista consolidada del onboarding.
type StatusHandler struct {
	uc *onboarding.StatusUseCase
}

// NewStatusHandler construye el handler de estado.
func NewStatusHandler(uc *onboarding.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Overall godoc
// @Summary      Vista consolidada del onboarding
// @Description  Progreso por sección, puntero actual, documentos, acuerdos y flag de completitud.
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OverallStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/status [get]
func (h *StatusHandler) Overall(c *fiber.Ctx) error {
	status, err := h.uc.GetOverallStatus(c.Context(), GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toOverallStatusResponse(status))
}
