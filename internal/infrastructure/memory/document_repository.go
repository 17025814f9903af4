package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

type DocumentRepo struct {
	mu   sync.RWMutex
	docs map[string]*entity.OnboardingDocument
}

func NewDocumentRepository() *DocumentRepo {
	return &DocumentRepo{docs: make(map[string]*entity.OnboardingDocument)}
}

func (r *DocumentRepo) Create(_ context.Context, doc *entity.OnboardingDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *DocumentRepo) GetByID(_ context.Context, id string) (*entity.OnboardingDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (r *DocumentRepo) ListByProfile(_ context.Context, profileID string) ([]*entity.OnboardingDocument, error) {
	return r.filter(func(d *entity.OnboardingDocument) bool {
		return d.BusinessProfileID == profileID
	}), nil
}

func (r *DocumentRepo) ListBySection(_ context.Context, profileID string, section entity.Section) ([]*entity.OnboardingDocument, error) {
	return r.filter(func(d *entity.OnboardingDocument) bool {
		return d.BusinessProfileID == profileID && d.SectionName != nil && *d.SectionName == section
	}), nil
}

func (r *DocumentRepo) ListUntagged(_ context.Context, profileID string) ([]*entity.OnboardingDocument, error) {
	return r.filter(func(d *entity.OnboardingDocument) bool {
		return d.BusinessProfileID == profileID && d.SectionName == nil
	}), nil
}

func (r *DocumentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

func (r *DocumentRepo) filter(keep func(*entity.OnboardingDocument) bool) []*entity.OnboardingDocument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.OnboardingDocument
	for _, d := range r.docs {
		if keep(d) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.Before(out[j].UploadedAt) })
	return out
}
