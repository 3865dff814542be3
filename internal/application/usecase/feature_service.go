package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ginebra-api/internal/domain/policy"
	"github.com/jhoicas/Ginebra-api/internal/domain/repository"
)

// FeatureService decide si la empresa del agente tiene habilitada una feature
// (gestión de reservas o productos). Es el único punto que conoce las banderas de empresa.
type FeatureService struct {
	companyRepo repository.CompanyRepository
}

// NewFeatureService construye el servicio de features.
func NewFeatureService(companyRepo repository.CompanyRepository) *FeatureService {
	return &FeatureService{companyRepo: companyRepo}
}

// Allowed informa si el actor puede usar la feature. master y admin pasan siempre.
// Devuelve error solo ante fallos de infraestructura.
func (s *FeatureService) Allowed(ctx context.Context, actor policy.Actor, feature string) (bool, error) {
	if policy.IsTopTier(actor.Role) {
		return true, nil
	}
	if actor.CompanyID == "" {
		return false, nil
	}
	company, err := s.companyRepo.GetByID(ctx, actor.CompanyID)
	if err != nil {
		return false, fmt.Errorf("feature %s: %w", feature, err)
	}
	return policy.CanUseFeature(actor, company, feature), nil
}
