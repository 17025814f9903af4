package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farm-onboarding/internal/application/dto"
	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// errorJSON mapea los errores sentinela del dominio a status + cuerpo de error.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownSection):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SECTION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownDocType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_DOC_TYPE", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownAgreement):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_AGREEMENT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrNoBusinessProfile):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_PROFILE", Message: "el usuario no tiene perfil de empresa"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrProfileExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROFILE_EXISTS", Message: "el usuario ya tiene perfil de empresa"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUploadFailed):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: "no se pudo guardar el archivo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

func toProfileResponse(p *entity.BusinessProfile) dto.BusinessProfileResponse {
	return dto.BusinessProfileResponse{
		ID:                   p.ID,
		UserID:               p.UserID,
		FullName:             p.FullName,
		TradingName:          p.TradingName,
		ABN:                  p.ABN,
		ACN:                  p.ACN,
		GSTRegistered:        p.GSTRegistered,
		MainContact:          p.MainContact,
		ContactEmails:        p.ContactEmails,
		ContactPhones:        p.ContactPhones,
		BusinessStructure:    p.BusinessStructure,
		OnboardingCompleteAt: p.OnboardingCompleteAt,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func toSectionResponse(r *entity.SectionRecord) dto.SectionResponse {
	return dto.SectionResponse{
		BusinessProfileID: r.BusinessProfileID,
		SectionName:       r.SectionName,
		Data:              r.Data,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toDocumentResponse(d *entity.OnboardingDocument) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:                d.ID,
		BusinessProfileID: d.BusinessProfileID,
		SectionName:       d.SectionName,
		DocType:           string(d.DocType),
		FileURL:           d.FileURL,
		ExpiryDate:        d.ExpiryDate,
		UploadedAt:        d.UploadedAt,
	}
}

func toDocumentResponses(docs []*entity.OnboardingDocument) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out
}

func toAgreementResponse(a *entity.SignedAgreement) dto.AgreementResponse {
	return dto.AgreementResponse{
		ID:                a.ID,
		BusinessProfileID: a.BusinessProfileID,
		Agreement:         string(a.Agreement),
		SignedByUser:      a.SignedByUser,
		SignedAt:          a.SignedAt,
		FileURL:           a.FileURL,
	}
}

func toAgreementResponses(items []*entity.SignedAgreement) []dto.AgreementResponse {
	out := make([]dto.AgreementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAgreementResponse(a))
	}
	return out
}

func toRuleResponse(r *entity.MandatoryDocumentRule) dto.MandatoryDocumentResponse {
	return dto.MandatoryDocumentResponse{
		SectionName: r.SectionName,
		DocType:     string(r.DocType),
		Mandatory:   r.Mandatory,
		Notes:       r.Notes,
	}
}

func toRuleResponses(rules []*entity.MandatoryDocumentRule) []dto.MandatoryDocumentResponse {
	out := make([]dto.MandatoryDocumentResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, toRuleResponse(r))
	}
	return out
}

func toProgressResponse(p *entity.OnboardingProgress) dto.ProgressResponse {
	steps := p.CompletedSteps
	if steps == nil {
		steps = []entity.Section{}
	}
	return dto.ProgressResponse{
		BusinessProfileID: p.BusinessProfileID,
		CurrentStep:       p.CurrentStep,
		CompletedSteps:    steps,
	}
}

func toRequirementsResponse(req *onboarding.SectionRequirements) dto.SectionRequirementsResponse {
	return dto.SectionRequirementsResponse{
		Required:   toRuleResponses(req.Required),
		Uploaded:   toDocumentResponses(req.Uploaded),
		Missing:    toRuleResponses(req.Missing),
		CanProceed: req.CanProceed,
	}
}

func toOverallStatusResponse(s *onboarding.OverallStatus) dto.OverallStatusResponse {
	progress := make([]dto.SectionProgressResponse, 0, len(s.Progress))
	for _, sp := range s.Progress {
		progress = append(progress, dto.SectionProgressResponse{
			Section:   sp.Section,
			Completed: sp.Completed,
			IsCurrent: sp.IsCurrent,
		})
	}
	steps := s.CompletedSteps
	if steps == nil {
		steps = []entity.Section{}
	}
	return dto.OverallStatusResponse{
		Progress:       progress,
		CurrentStep:    s.CurrentStep,
		CompletedSteps: steps,
		Documents:      toDocumentResponses(s.Documents),
		Agreements:     toAgreementResponses(s.Agreements),
		IsComplete:     s.IsComplete,
	}
}
