package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/farm-onboarding/internal/domain/entity"
	"github.com/tu-usuario/farm-onboarding/internal/domain/repository"
)

var _ repository.MandatoryDocumentRepository = (*MandatoryDocumentRepo)(nil)

// MandatoryDocumentRepo catálogo de requisitos en memoria. Se inicializa con
// un snapshot de reglas (típicamente catalog.DefaultRules) y es solo lectura.
type MandatoryDocumentRepo struct {
	mu    sync.RWMutex
	rules []*entity.MandatoryDocumentRule
}

func NewMandatoryDocumentRepository(rules []entity.MandatoryDocumentRule) *MandatoryDocumentRepo {
	out := make([]*entity.MandatoryDocumentRule, 0, len(rules))
	for i := range rules {
		cp := rules[i]
		out = append(out, &cp)
	}
	return &MandatoryDocumentRepo{rules: out}
}

func (r *MandatoryDocumentRepo) ListAll(_ context.Context) ([]*entity.MandatoryDocumentRule, error) {
	return r.filter(func(*entity.MandatoryDocumentRule) bool { return true }), nil
}

func (r *MandatoryDocumentRepo) ListBySection(_ context.Context, section entity.Section) ([]*entity.MandatoryDocumentRule, error) {
	return r.filter(func(rule *entity.MandatoryDocumentRule) bool {
		return rule.SectionName == section
	}), nil
}

func (r *MandatoryDocumentRepo) ListMandatoryBySection(_ context.Context, section entity.Section) ([]*entity.MandatoryDocumentRule, error) {
	return r.filter(func(rule *entity.MandatoryDocumentRule) bool {
		return rule.SectionName == section && rule.Mandatory
	}), nil
}

func (r *MandatoryDocumentRepo) filter(keep func(*entity.MandatoryDocumentRule) bool) []*entity.MandatoryDocumentRule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.MandatoryDocumentRule
	for _, rule := range r.rules {
		if keep(rule) {
			cp := *rule
			out = append(out, &cp)
		}
	}
	return out
}
