package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/dto"
	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// AgreementHandler maneja la firma y consulta de acuerdos.
type AgreementHandler struct {
	uc *onboarding.AgreementUseCase
}

// NewAgreementHandler construye el handler de acuerdos.
func NewAgreementHandler(uc *onboarding.AgreementUseCase) *AgreementHandler {
	return &AgreementHandler{uc: uc}
}

func parseAgreement(c *fiber.Ctx) (entity.AgreementType, bool) {
	at := entity.AgreementType(c.Params("agreement"))
	if !at.Valid() {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_AGREEMENT", Message: "acuerdo desconocido: " + c.Params("agreement")})
		return "", false
	}
	return at, true
}

// Sign godoc
// @Summary      Firmar un acuerdo
// @Description  Re-firmar reemplaza la firma anterior (último firmante y momento son los autoritativos).
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        agreement  path  string                    true   "tipo de acuerdo"
// @Param        body       body  dto.SignAgreementRequest  false  "file_url opcional del PDF firmado"
// @Success      200        {object}  dto.AgreementResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/onboarding/agreements/{agreement}/sign [post]
func (h *AgreementHandler) Sign(c *fiber.Ctx) error {
	agreementType, ok := parseAgreement(c)
	if !ok {
		return nil
	}
	var in dto.SignAgreementRequest
	// Cuerpo opcional: sin body se firma sin file_url.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	agreement, err := h.uc.Sign(c.Context(), GetUserID(c), agreementType, in.FileURL)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toAgreementResponse(agreement))
}

// List godoc
// @Summary      Listar acuerdos firmados
// @Tags         agreements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.AgreementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/agreements [get]
func (h *AgreementHandler) List(c *fiber.Ctx) error {
	agreements, err := h.uc.ListByProfile(c.Context(), GetUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toAgreementResponses(agreements))
}

// Status godoc
// @Summary      Consultar si un acuerdo está firmado
// @Tags         agreements
// @Produce      json
// @Security     BearerAuth
// @Param        agreement  path  string  true  "tipo de acuerdo"
// @Success      200        {object}  dto.AgreementStatusResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/onboarding/agreements/{agreement} [get]
func (h *AgreementHandler) Status(c *fiber.Ctx) error {
	agreementType, ok := parseAgreement(c)
	if !ok {
		return nil
	}
	agreement, err := h.uc.IsSigned(c.Context(), GetUserID(c), agreementType)
	if err != nil {
		return errorJSON(c, err)
	}
	out := dto.AgreementStatusResponse{Agreement: string(agreementType), Signed: agreement != nil}
	if agreement != nil {
		sig := toAgreementResponse(agreement)
		out.Signature = &sig
	}
	return c.JSON(out)
}
