package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.AgreementRepository = (*AgreementRepo)(nil)

type agreementKey struct {
	profileID string
	agreement entity.AgreementType
}

type AgreementRepo struct {
	mu    sync.RWMutex
	items map[agreementKey]*entity.SignedAgreement
}

func NewAgreementRepository() *AgreementRepo {
	return &AgreementRepo{items: make(map[agreementKey]*entity.SignedAgreement)}
}

func (r *AgreementRepo) Upsert(_ context.Context, a *entity.SignedAgreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := agreementKey{a.BusinessProfileID, a.Agreement}
	if prev, ok := r.items[key]; ok {
		// Igual que el RETURNING id del upsert SQL: al re-firmar la fila
		// conserva su identidad y la entidad refleja el ID persistido.
		a.ID = prev.ID
	}
	cp := *a
	r.items[key] = &cp
	return nil
}

func (r *AgreementRepo) Get(_ context.Context, profileID string, agreementType entity.AgreementType) (*entity.SignedAgreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[agreementKey{profileID, agreementType}]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *AgreementRepo) ListByProfile(_ context.Context, profileID string) ([]*entity.SignedAgreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.SignedAgreement
	for _, a := range r.items {
		if a.BusinessProfileID == profileID {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SignedAt.Before(out[j].SignedAt) })
	return out, nil
}
