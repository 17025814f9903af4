package onboarding

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

// UploadDocumentInput entrada para subir un documento. Section nil registra
// un documento de toda la empresa, no atado a una sección.
type UploadDocumentInput struct {
	DocType     entity.DocumentType
	Section     *entity.Section
	FileName    string
	Content     []byte
	ContentType string
	ExpiryDate  *time.Time
}

// DocumentUseCase registro de documentos subidos (Document Registry).
type DocumentUseCase struct {
	profiles  repository.BusinessProfileRepository
	documents repository.DocumentRepository
	files     FileStore
}

// NewDocumentUseCase construye el registro con sus puertos.
func NewDocumentUseCase(profiles repository.BusinessProfileRepository, documents repository.DocumentRepository, files FileStore) *DocumentUseCase {
	return &DocumentUseCase{profiles: profiles, documents: documents, files: files}
}

// Upload sube un documento en dos fases: (a) guarda los bytes en el file
// store bajo un nombre único por (perfil, tipo, timestamp); (b) crea el
// registro de metadatos apuntando a la dirección devuelta. Si (a) tiene éxito
// y (b) falla, los bytes quedan huérfanos: riesgo aceptado, sin transacción
// compensatoria. Los metadatos son la fuente de verdad de lo "subido".
func (uc *DocumentUseCase) Upload(ctx context.Context, userID string, in UploadDocumentInput) (*entity.OnboardingDocument, error) {
	if !in.DocType.Valid() {
		return nil, domain.ErrUnknownDocType
	}
	if in.Section != nil && !in.Section.Valid() {
		return nil, domain.ErrUnknownSection
	}
	if len(in.Content) == 0 {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := objectName(profile.ID, in.DocType, in.FileName, time.Now())
	fileURL, err := uc.files.Put(ctx, name, in.Content, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	doc := &entity.OnboardingDocument{
		ID:                uuid.New().String(),
		BusinessProfileID: profile.ID,
		SectionName:       in.Section,
		DocType:           in.DocType,
		FileURL:           fileURL,
		ExpiryDate:        in.ExpiryDate,
		UploadedAt:        time.Now(),
	}
	if err := uc.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete elimina solo el registro de metadatos del documento; los bytes del
// file store no se tocan. Devuelve ErrNotFound si el documento no existe o no
// pertenece al perfil del usuario.
func (uc *DocumentUseCase) Delete(ctx context.Context, userID, documentID string) error {
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return err
	}
	doc, err := uc.documents.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc == nil || doc.BusinessProfileID != profile.ID {
		return domain.ErrNotFound
	}
	return uc.documents.Delete(ctx, documentID)
}

// ListByProfile devuelve todos los documentos del perfil del usuario.
func (uc *DocumentUseCase) ListByProfile(ctx context.Context, userID string) ([]*entity.OnboardingDocument, error) {
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.documents.ListByProfile(ctx, profile.ID)
}

// ListBySection devuelve los documentos del perfil etiquetados con la sección.
func (uc *DocumentUseCase) ListBySection(ctx context.Context, userID string, section entity.Section) ([]*entity.OnboardingDocument, error) {
	if !section.Valid() {
		return nil, domain.ErrUnknownSection
	}
	profile, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.documents.ListBySection(ctx, profile.ID, section)
}

func (uc *DocumentUseCase) requireProfile(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	profile, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNoBusinessProfile
	}
	return profile, nil
}

// objectName nombre del objeto en el file store:
// <profileID>/<docType>_<unix-ms><ext>. El timestamp evita colisiones entre
// subidas del mismo tipo; la extensión se conserva del archivo original.
func objectName(profileID string, docType entity.DocumentType, fileName string, now time.Time) string {
	return fmt.Sprintf("%s/%s_%d%s", profileID, docType, now.UnixMilli(), path.Ext(fileName))
}
