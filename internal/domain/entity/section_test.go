package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Orden fijo de secciones
// ──────────────────────────────────────────────────────────────────────────────

// El orden canónico tiene exactamente seis secciones conocidas, sin duplicados.
func TestSectionOrder_SeisSeccionesSinDuplicados(t *testing.T) {
	require.Len(t, entity.SectionOrder, 6)
	seen := make(map[entity.Section]bool)
	for _, s := range entity.SectionOrder {
		assert.True(t, s.Valid(), "toda sección del orden debe ser válida: %s", s)
		assert.False(t, seen[s], "sección duplicada en el orden: %s", s)
		seen[s] = true
	}
	assert.Equal(t, entity.SectionBasic, entity.SectionOrder[0], "basic debe ser la primera sección")
	assert.Equal(t, entity.SectionCommunications, entity.SectionOrder[len(entity.SectionOrder)-1])
}

// Next y Previous son inversas dentro del orden: para toda sección con
// siguiente, Previous(Next(s)) == s.
func TestSection_NextPreviousSonInversas(t *testing.T) {
	for _, s := range entity.SectionOrder {
		next := s.Next()
		if next == "" {
			continue
		}
		assert.Equal(t, s, next.Previous(), "Previous(Next(%s)) debe volver a %s", s, s)
	}
}

// Los bordes devuelven cadena vacía: la primera sección no tiene anterior y la
// última no tiene siguiente.
func TestSection_BordesDevuelvenVacio(t *testing.T) {
	assert.Equal(t, entity.Section(""), entity.SectionOrder[0].Previous())
	assert.Equal(t, entity.Section(""), entity.SectionOrder[len(entity.SectionOrder)-1].Next())
}

// Una sección desconocida no navega, no es válida y tiene índice negativo.
func TestSection_Desconocida(t *testing.T) {
	bogus := entity.Section("warehouse")
	assert.False(t, bogus.Valid())
	assert.Equal(t, -1, bogus.Index())
	assert.Equal(t, entity.Section(""), bogus.Next())
	assert.Equal(t, entity.Section(""), bogus.Previous())

	_, ok := entity.ParseSection("warehouse")
	assert.False(t, ok)
}

// ParseSection acepta los seis nombres canónicos.
func TestParseSection_NombresCanonicos(t *testing.T) {
	for _, s := range entity.SectionOrder {
		got, ok := entity.ParseSection(string(s))
		require.True(t, ok, "ParseSection(%s) debe aceptar", s)
		assert.Equal(t, s, got)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Progreso
// ──────────────────────────────────────────────────────────────────────────────

// IsComplete exige el conjunto completo de secciones válidas; los duplicados y
// nombres desconocidos en completed_steps no cuentan.
func TestOnboardingProgress_IsComplete(t *testing.T) {
	p := &entity.OnboardingProgress{CurrentStep: entity.SectionBasic}
	assert.False(t, p.IsComplete(), "sin pasos completados no está completo")

	// Todas menos la última
	p.CompletedSteps = append([]entity.Section(nil), entity.SectionOrder[:5]...)
	assert.False(t, p.IsComplete())

	// Rellenar con un duplicado y un nombre desconocido no lo completa
	p.CompletedSteps = append(p.CompletedSteps, entity.SectionBasic, entity.Section("bogus"))
	assert.False(t, p.IsComplete(), "duplicados y desconocidos no cuentan para la completitud")

	// Con las seis secciones sí
	p.CompletedSteps = append([]entity.Section(nil), entity.SectionOrder...)
	assert.True(t, p.IsComplete())
}

func TestOnboardingProgress_HasCompleted(t *testing.T) {
	p := &entity.OnboardingProgress{
		CompletedSteps: []entity.Section{entity.SectionBasic, entity.SectionFarm},
	}
	assert.True(t, p.HasCompleted(entity.SectionBasic))
	assert.False(t, p.HasCompleted(entity.SectionFinancial))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogos de tipos
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentType_Valid(t *testing.T) {
	require.NotEmpty(t, entity.DocumentTypes)
	for _, dt := range entity.DocumentTypes {
		assert.True(t, dt.Valid(), "tipo de documento del catálogo debe ser válido: %s", dt)
	}
	assert.False(t, entity.DocumentType("passport").Valid())
}

func TestAgreementType_Valid(t *testing.T) {
	require.Len(t, entity.AgreementTypes, 4)
	for _, at := range entity.AgreementTypes {
		assert.True(t, at.Valid())
	}
	assert.False(t, entity.AgreementType("nda").Valid())
}
