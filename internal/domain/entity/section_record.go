package entity

import "time"

// SectionRecord guarda los datos capturados para una sección del onboarding.
// Invariante: único por (business_profile_id, section_name); cada guardado
// reemplaza el payload completo (upsert, nunca merge parcial).
type SectionRecord struct {
	BusinessProfileID string
	SectionName       Section
	Data              map[string]any // payload libre por sección, serializable a JSON
	UpdatedAt         time.Time
}
