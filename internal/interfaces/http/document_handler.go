package http

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/dto"
	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// DocumentHandler maneja la subida, listado y borrado de documentos.
type DocumentHandler struct {
	uc *onboarding.DocumentUseCase
}

// NewDocumentHandler construye el handler de documentos.
func NewDocumentHandler(uc *onboarding.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir un documento
// @Description  Multipart: file (archivo), doc_type (obligatorio), section (opcional), expiry_date (opcional, RFC3339).
// @Tags         documents
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file      formData  file    true   "archivo"
// @Param        doc_type  formData  string  true   "tipo de documento"
// @Param        section   formData  string  false  "sección asociada"
// @Param        expiry_date  formData  string  false  "vencimiento RFC3339"
// @Success      201       {object}  dto.DocumentResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/onboarding/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo file requerido"})
	}
	docType, ok := parseDocType(c.FormValue("doc_type"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_DOC_TYPE", Message: "tipo de documento desconocido: " + c.FormValue("doc_type")})
	}

	var section *entity.Section
	if raw := c.FormValue("section"); raw != "" {
		s, ok := entity.ParseSection(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SECTION", Message: "sección desconocida: " + raw})
		}
		section = &s
	}

	var expiry *time.Time
	if raw := c.FormValue("expiry_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiry_date debe ser RFC3339"})
		}
		expiry = &t
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}

	doc, err := h.uc.Upload(c.Context(), GetUserID(c), onboarding.UploadDocumentInput{
		DocType:     docType,
		Section:     section,
		FileName:    fileHeader.Filename,
		Content:     content,
		ContentType: fileHeader.Header.Get("Content-Type"),
		ExpiryDate:  expiry,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc))
}

// List godoc
// @Summary      Listar documentos del perfil
// @Description  Con ?section=<nombre> filtra por sección; sin query lista todos.
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        section  query  string  false  "filtrar por sección"
// @Success      200      {array}   dto.DocumentResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/onboarding/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var (
		docs []*entity.OnboardingDocument
		err  error
	)
	if raw := c.Query("section"); raw != "" {
		section, ok := entity.ParseSection(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SECTION", Message: "sección desconocida: " + raw})
		}
		docs, err = h.uc.ListBySection(c.Context(), GetUserID(c), section)
	} else {
		docs, err = h.uc.ListByProfile(c.Context(), GetUserID(c))
	}
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(toDocumentResponses(docs))
}

// Delete godoc
// @Summary      Eliminar el registro de un documento
// @Description  Borra solo los metadatos; los bytes del file store no se tocan.
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/onboarding/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseDocType(raw string) (entity.DocumentType, bool) {
	dt := entity.DocumentType(raw)
	return dt, dt.Valid()
}
