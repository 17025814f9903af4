package onboarding_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farm-onboarding/internal/domain/catalog"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidos: repos en memoria + perfil sembrado
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-000000000001"

// testEnv agrupa los repos en memoria que los casos de uso comparten.
type testEnv struct {
	profiles   *memory.BusinessProfileRepo
	sections   *memory.SectionRepo
	documents  *memory.DocumentRepo
	agreements *memory.AgreementRepo
	progress   *memory.ProgressRepo
	rules      *memory.MandatoryDocumentRepo
	files      *memory.FileStore
}

func newTestEnv() *testEnv {
	return &testEnv{
		profiles:   memory.NewBusinessProfileRepository(),
		sections:   memory.NewSectionRepository(),
		documents:  memory.NewDocumentRepository(),
		agreements: memory.NewAgreementRepository(),
		progress:   memory.NewProgressRepository(),
		rules:      memory.NewMandatoryDocumentRepository(catalog.DefaultRules),
		files:      memory.NewFileStore(),
	}
}

// seedProfile crea un perfil para testUserID y devuelve su ID.
func (e *testEnv) seedProfile(t *testing.T) string {
	t.Helper()
	now := time.Now()
	profile := &entity.BusinessProfile{
		ID:        uuid.New().String(),
		UserID:    testUserID,
		FullName:  "Riverina Grains Pty Ltd",
		ABN:       "51824753556",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, e.profiles.Create(context.Background(), profile))
	return profile.ID
}

// seedDocument registra un documento directamente en el repo, sin pasar por
// el caso de uso de subida.
func (e *testEnv) seedDocument(t *testing.T, profileID string, section *entity.Section, docType entity.DocumentType) *entity.OnboardingDocument {
	t.Helper()
	doc := &entity.OnboardingDocument{
		ID:                uuid.New().String(),
		BusinessProfileID: profileID,
		SectionName:       section,
		DocType:           docType,
		FileURL:           "mem://" + profileID + "/" + string(docType),
		UploadedAt:        time.Now(),
	}
	require.NoError(t, e.documents.Create(context.Background(), doc))
	return doc
}

func sectionPtr(s entity.Section) *entity.Section { return &s }
