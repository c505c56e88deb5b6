package service

import (
	"context"
	"math"

	"github.com/bwmarrin/snowflake"
	"github.com/tatamihq/tatami/internal/quota/domain"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	"go.uber.org/zap"
)

const nearLimitThreshold = 80

const (
	reasonUnlimited = "Unlimited plan"
	reasonWithin    = "Within plan limit"
	reasonReached   = "Plan limit reached"
)

type service struct {
	log     *zap.Logger
	tenants tenantdomain.Repository
	counts  domain.Repository
}

func NewService(log *zap.Logger, tenants tenantdomain.Repository, counts domain.Repository) domain.Service {
	return &service{
		log:     log.Named("quota.service"),
		tenants: tenants,
		counts:  counts,
	}
}

func (s *service) Snapshot(ctx context.Context, tenantID snowflake.ID) (*domain.UsageSnapshot, error) {
	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	limits := tenant.LicenseLimits.Data()

	snapshot := &domain.UsageSnapshot{
		TenantID:   tenantID.String(),
		Categories: make(map[domain.Category]domain.CategoryUsage, len(domain.Categories)),
	}

	for _, category := range domain.Categories {
		limit, _ := limits.For(string(category))
		current, err := s.counts.Count(ctx, tenantID, category)
		if err != nil {
			return nil, err
		}

		usage := computeUsage(current, limit)
		snapshot.Categories[category] = usage
		snapshot.TotalItems += current
		if usage.IsOverLimit {
			snapshot.OverLimitItems++
		}
		if !usage.IsUnlimited && usage.Percentage >= nearLimitThreshold {
			snapshot.NearLimitItems++
		}
	}

	return snapshot, nil
}

func (s *service) CheckAdmission(ctx context.Context, tenantID snowflake.ID, category domain.Category) (*domain.AdmissionDecision, error) {
	if !category.Valid() {
		return nil, domain.ErrUnknownCategory
	}

	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	limit, _ := tenant.LicenseLimits.Data().For(string(category))

	// Unlimited categories skip the count query entirely.
	if limit == tenantdomain.Unlimited {
		return &domain.AdmissionDecision{
			Allowed:   true,
			Category:  category,
			Current:   0,
			Limit:     limit,
			Remaining: tenantdomain.Unlimited,
			Reason:    reasonUnlimited,
		}, nil
	}

	current, err := s.counts.Count(ctx, tenantID, category)
	if err != nil {
		return nil, err
	}

	// Strict less-than: admitting the next item must not push current
	// past the limit.
	allowed := current < int64(limit)
	decision := &domain.AdmissionDecision{
		Allowed:   allowed,
		Category:  category,
		Current:   current,
		Limit:     limit,
		Remaining: remaining(current, limit),
		Reason:    reasonWithin,
	}
	if !allowed {
		decision.Reason = reasonReached
		s.log.Info("admission denied",
			zap.String("tenant_id", tenantID.String()),
			zap.String("category", string(category)),
			zap.Int64("current", current),
			zap.Int("limit", limit),
		)
	}
	return decision, nil
}

func computeUsage(current int64, limit int) domain.CategoryUsage {
	if limit == tenantdomain.Unlimited {
		return domain.CategoryUsage{
			Current:     current,
			Limit:       limit,
			Remaining:   tenantdomain.Unlimited,
			Percentage:  0,
			IsUnlimited: true,
		}
	}

	usage := domain.CategoryUsage{
		Current:     current,
		Limit:       limit,
		Remaining:   remaining(current, limit),
		IsOverLimit: current > int64(limit),
	}
	switch {
	case limit > 0:
		usage.Percentage = int(math.Round(float64(current) / float64(limit) * 100))
	case current > 0:
		usage.Percentage = 100
	}
	return usage
}

func remaining(current int64, limit int) int64 {
	left := int64(limit) - current
	if left < 0 {
		return 0
	}
	return left
}
