package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/dto"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// CatalogHandler expone los catálogos de referencia: secciones, tipos de
// documento, tipos de acuerdo y reglas de documentos obligatorios.
type CatalogHandler struct {
	rules repository.MandatoryDocumentRepository
}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler(rules repository.MandatoryDocumentRepository) *CatalogHandler {
	return &CatalogHandler{rules: rules}
}

// Sections godoc
// @Summary      Listar las secciones en su orden fijo
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/catalog/sections [get]
func (h *CatalogHandler) Sections(c *fiber.Ctx) error {
	return c.JSON(entity.SectionOrder)
}

// DocumentTypes godoc
// @Summary      Listar los tipos de documento conocidos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/catalog/document-types [get]
func (h *CatalogHandler) DocumentTypes(c *fiber.Ctx) error {
	return c.JSON(entity.DocumentTypes)
}

// AgreementTypes godoc
// @Summary      Listar los tipos de acuerdo conocidos
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/catalog/agreement-types [get]
func (h *CatalogHandler) AgreementTypes(c *fiber.Ctx) error {
	return c.JSON(entity.AgreementTypes)
}

// Rules godoc
// @Summary      Listar las reglas de documentos por sección
// @Description  Con ?section=<nombre> filtra por sección; sin query lista el catálogo completo.
// @Tags         catalog
// @Produce      json
// @Param        section  query  string  false  "filtrar por sección"
// @Success      200      {array}   dto.MandatoryDocumentResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/catalog/mandatory-documents [get]
func (h *CatalogHandler) Rules(c *fiber.Ctx) error {
	var (
		rules []*entity.MandatoryDocumentRule
		err   error
	)
	if raw := c.Query("section"); raw != "" {
		section, ok := entity.ParseSection(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SECTION", Message: "sección desconocida: " + raw})
		}
		rules, err = h.rules.ListBySection(c.Context(), section)
	} else {
		rules, err = h.rules.ListAll(c.Context())
	}
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toRuleResponses(rules))
}
