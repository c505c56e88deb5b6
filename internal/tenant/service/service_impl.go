package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/tatamihq/tatami/internal/clock"
	"github.com/tatamihq/tatami/internal/tenant/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type service struct {
	log   *zap.Logger
	repo  domain.Repository
	clock clock.Clock
}

func NewService(log *zap.Logger, repo domain.Repository, clk clock.Clock) domain.Service {
	return &service{
		log:   log.Named("tenant.service"),
		repo:  repo,
		clock: clk,
	}
}

func (s *service) ResolveByDomain(ctx context.Context, identifier string) (*domain.Tenant, error) {
	if strings.TrimSpace(identifier) == "" {
		return nil, domain.ErrInvalidDomain
	}
	return s.repo.FindActiveByDomain(ctx, identifier)
}

func (s *service) GetByID(ctx context.Context, id snowflake.ID) (*domain.Tenant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id snowflake.ID, patch domain.Patch) (*domain.Tenant, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Domain != nil {
		next := strings.TrimSpace(*patch.Domain)
		if next == "" {
			return nil, domain.ErrInvalidDomain
		}
		if !normalizedEqual(next, tenant.Domain) {
			taken, err := s.repo.DomainExists(ctx, next)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrDomainTaken
			}
		}
		tenant.Domain = next
	}
	if patch.Plan != nil {
		if !domain.ValidPlan(*patch.Plan) {
			return nil, domain.ErrInvalidPlan
		}
		tenant.Plan = *patch.Plan
	}
	if patch.Name != nil {
		tenant.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.ContactEmail != nil {
		tenant.ContactEmail = strings.TrimSpace(*patch.ContactEmail)
	}
	if patch.ContactPhone != nil {
		tenant.ContactPhone = strings.TrimSpace(*patch.ContactPhone)
	}
	if patch.Address != nil {
		tenant.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.IsActive != nil {
		tenant.IsActive = *patch.IsActive
	}
	if patch.Settings != nil {
		tenant.Settings = datatypes.NewJSONType(*patch.Settings)
	}
	tenant.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	s.log.Info("tenant updated", zap.String("tenant_id", tenant.ID.String()))
	return tenant, nil
}

func normalizedEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
