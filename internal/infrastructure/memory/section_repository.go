package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

type sectionKey struct {
	profileID string
	section   entity.Section
}

type SectionRepo struct {
	mu      sync.RWMutex
	records map[sectionKey]*entity.SectionRecord
}

func NewSectionRepository() *SectionRepo {
	return &SectionRepo{records: make(map[sectionKey]*entity.SectionRecord)}
}

func (r *SectionRepo) Upsert(_ context.Context, rec *entity.SectionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records[sectionKey{rec.BusinessProfileID, rec.SectionName}] = &cp
	return nil
}

func (r *SectionRepo) Get(_ context.Context, profileID string, section entity.Section) (*entity.SectionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[sectionKey{profileID, section}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *SectionRepo) GetAll(_ context.Context, profileID string) ([]*entity.SectionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Orden canónico de secciones, igual que el ORDER BY de la versión SQL.
	out := make([]*entity.SectionRecord, 0, len(entity.SectionOrder))
	for _, s := range entity.SectionOrder {
		if rec, ok := r.records[sectionKey{profileID, s}]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}
