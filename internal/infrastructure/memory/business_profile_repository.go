// Package memory provee implementaciones en memoria de los puertos de
// repositorio, para tests y desarrollo sin base de datos.
package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/farm-onboarding/internal/domain"
	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)

type BusinessProfileRepo struct {
	mu       sync.RWMutex
	byID     map[string]*entity.BusinessProfile
	byUserID map[string]string
}

func NewBusinessProfileRepository() *BusinessProfileRepo {
	return &BusinessProfileRepo{
		byID:     make(map[string]*entity.BusinessProfile),
		byUserID: make(map[string]string),
	}
}

func (r *BusinessProfileRepo) Create(_ context.Context, p *entity.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.byUserID[p.UserID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.byUserID[p.UserID] = p.ID
	return nil
}

func (r *BusinessProfileRepo) GetByID(_ context.Context, id string) (*entity.BusinessProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *BusinessProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.BusinessProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byUserID[userID]
	if !ok {
		return nil, nil
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *BusinessProfileRepo) Update(_ context.Context, p *entity.BusinessProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}
