package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.ProgressRepository = (*ProgressRepo)(nil)

type ProgressRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.OnboardingProgress
}

func NewProgressRepository() *ProgressRepo {
	return &ProgressRepo{items: make(map[string]*entity.OnboardingProgress)}
}

func (r *ProgressRepo) Get(_ context.Context, profileID string) (*entity.OnboardingProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[profileID]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.CompletedSteps = append([]entity.Section(nil), p.CompletedSteps...)
	return &cp, nil
}

func (r *ProgressRepo) Upsert(_ context.Context, p *entity.OnboardingProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.CompletedSteps = append([]entity.Section(nil), p.CompletedSteps...)
	r.items[p.BusinessProfileID] = &cp
	return nil
}
