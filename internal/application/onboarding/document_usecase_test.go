package onboarding_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farm-onboarding/internal/application/onboarding"
	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del registro de documentos
// ──────────────────────────────────────────────────────────────────────────────

// Subida feliz: los bytes van al file store y queda el registro de metadatos
// apuntando a la URL devuelta.
func TestUpload_GuardaBytesYMetadatos(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewDocumentUseCase(env.profiles, env.documents, env.files)

	doc, err := uc.Upload(context.Background(), testUserID, onboarding.UploadDocumentInput{
		DocType:     entity.DocABNCertificate,
		Section:     sectionPtr(entity.SectionBasic),
		FileName:    "abn.pdf",
		Content:     []byte("%PDF-1.4 contenido"),
		ContentType: "application/pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, env.files.Len(), "los bytes deben estar en el file store")
	assert.True(t, strings.HasPrefix(doc.FileURL, "mem://"), "la URL viene del file store")
	assert.True(t, strings.HasSuffix(doc.FileURL, ".pdf"), "conserva la extensión original")
	require.NotNil(t, doc.SectionName)
	assert.Equal(t, entity.SectionBasic, *doc.SectionName)

	stored, err := env.documents.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

// Subida sin sección registra un documento de toda la empresa.
func TestUpload_SinSeccion(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewDocumentUseCase(env.profiles, env.documents, env.files)
	ctx := context.Background()

	doc, err := uc.Upload(ctx, testUserID, onboarding.UploadDocumentInput{
		DocType:  entity.DocServiceAgreement,
		FileName: "contrato.pdf",
		Content:  []byte("firmado"),
	})
	require.NoError(t, err)
	assert.Nil(t, doc.SectionName)

	untagged, err := env.documents.ListUntagged(ctx, doc.BusinessProfileID)
	require.NoError(t, err)
	require.Len(t, untagged, 1)
}

// Si el file store falla, no queda registro de metadatos.
func TestUpload_FalloDelFileStoreNoDejaMetadatos(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	env.files.FailNext = errors.New("bucket no disponible")
	uc := onboarding.NewDocumentUseCase(env.profiles, env.documents, env.files)
	ctx := context.Background()

	_, err := uc.Upload(ctx, testUserID, onboarding.UploadDocumentInput{
		DocType:  entity.DocABNCertificate,
		FileName: "abn.pdf",
		Content:  []byte("x"),
	})
	assert.ErrorIs(t, err, domain.ErrUploadFailed)

	docs, err := uc.ListByProfile(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, docs, "la subida fallida no debe registrar metadatos")
}

// Validaciones de entrada: tipo desconocido, sección desconocida, sin contenido.
func TestUpload_Validaciones(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewDocumentUseCase(env.profiles, env.documents, env.files)
	ctx := context.Background()

	_, err := uc.Upload(ctx, testUserID, onboarding.UploadDocumentInput{
		DocType: entity.DocumentType("passport"), Content: []byte("x"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownDocType)

	bogus := entity.Section("bogus")
	_, err = uc.Upload(ctx, testUserID, onboarding.UploadDocumentInput{
		DocType: entity.DocABNCertificate, Section: &bogus, Content: []byte("x"),
	})
	assert.ErrorIs(t, err, domain.ErrUnknownSection)

	_, err = uc.Upload(ctx, testUserID, onboarding.UploadDocumentInput{
		DocType: entity.DocABNCertificate,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Delete borra solo los metadatos; los bytes del file store quedan.
func TestDelete_SoloMetadatos(t *testing.T) {
	env := newTestEnv()
	env.seedProfile(t)
	uc := onboarding.NewDocumentUseCase(env.profiles, env.documents, env.files)
	ctx := context.Background()

	doc, err := uc.Upload(ctx, testUserID, onboarding.UploadDocumentInput{
		DocType:  entity.DocBASStatement,
		FileName: "bas.pdf",
		Content:  []byte("trimestre 4"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, testUserID, doc.ID))

	docs, err := uc.ListByProfile(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, 1, env.files.Len(), "los bytes no se tocan al borrar metadatos")
}

// Borrar un documento ajeno o inexistente es ErrNotFound.
func TestDelete_AjenoOInexistente(t *testing.T) {
	env := newTestEnv()
	profileID := env.seedProfile(t)
	otro := env.seedDocument(t, "otro-perfil", nil, entity.DocBASStatement)
	_ = profileID
	uc := onboarding.NewDocumentUseCase(env.profiles, env.documents, env.files)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Delete(ctx, testUserID, otro.ID), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, testUserID, "no-existe"), domain.ErrNotFound)
}

// ListBySection filtra por sección exacta; ListByProfile trae todo.
func TestList_PorSeccionYPorPerfil(t *testing.T) {
	env := newTestEnv()
	profileID := env.seedProfile(t)
	env.seedDocument(t, profileID, sectionPtr(entity.SectionBasic), entity.DocABNCertificate)
	env.seedDocument(t, profileID, sectionPtr(entity.SectionFarm), entity.DocWaterLicence)
	env.seedDocument(t, profileID, nil, entity.DocPrivacyConsent)
	uc := onboarding.NewDocumentUseCase(env.profiles, env.documents, env.files)
	ctx := context.Background()

	all, err := uc.ListByProfile(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	basic, err := uc.ListBySection(ctx, testUserID, entity.SectionBasic)
	require.NoError(t, err)
	require.Len(t, basic, 1)
	assert.Equal(t, entity.DocABNCertificate, basic[0].DocType)
}
