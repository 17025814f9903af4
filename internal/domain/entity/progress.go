package entity

// OnboardingProgress estado del avance del onboarding, exactamente uno por
// perfil. CompletedSteps se persiste como secuencia pero su semántica es de
// conjunto: el orden de inserción no significa nada.
type OnboardingProgress struct {
	BusinessProfileID string
	CurrentStep       Section
	CompletedSteps    []Section
}

// HasCompleted informa si la sección ya está en el conjunto de completadas.
func (p *OnboardingProgress) HasCompleted(s Section) bool {
	for _, c := range p.CompletedSteps {
		if c == s {
			return true
		}
	}
	return false
}

// IsComplete informa si las seis secciones están completadas. Igualdad de
// conjuntos contra el dominio completo: tolera duplicados y cualquier orden
// en CompletedSteps.
func (p *OnboardingProgress) IsComplete() bool {
	seen := make(map[Section]bool, len(SectionOrder))
	for _, c := range p.CompletedSteps {
		if c.Valid() {
			seen[c] = true
		}
	}
	return len(seen) == len(SectionOrder)
}
