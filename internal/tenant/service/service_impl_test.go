package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatamihq/tatami/internal/clock"
	"github.com/tatamihq/tatami/internal/tenant/domain"
	"github.com/tatamihq/tatami/internal/tenant/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node, *clock.FakeClock) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Tenant{}))
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clk := clock.NewFakeClock(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))
	return NewService(zap.NewNop(), repository.NewRepository(db), clk), db, node, clk
}

func seed(t *testing.T, db *gorm.DB, node *snowflake.Node, dom string) *domain.Tenant {
	t.Helper()
	tenant := &domain.Tenant{
		ID:           node.Generate(),
		Domain:       dom,
		Name:         "Academy",
		Plan:         domain.PlanTrial,
		ContactEmail: "owner@example.com",
		IsActive:     true,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func TestResolveByDomainRejectsBlank(t *testing.T) {
	svc, _, _, _ := setupService(t)

	_, err := svc.ResolveByDomain(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidDomain)
}

func TestUpdateAppliesPatch(t *testing.T) {
	svc, db, node, clk := setupService(t)
	tenant := seed(t, db, node, "gb")

	name := "  Renamed Academy "
	phone := "+55 21 99999-0000"
	inactive := false
	plan := domain.PlanPremium

	updated, err := svc.Update(context.Background(), tenant.ID, domain.Patch{
		Name:         &name,
		ContactPhone: &phone,
		IsActive:     &inactive,
		Plan:         &plan,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Academy", updated.Name)
	assert.Equal(t, phone, updated.ContactPhone)
	assert.False(t, updated.IsActive)
	assert.Equal(t, domain.PlanPremium, updated.Plan)
	assert.Equal(t, clk.Now(), updated.UpdatedAt)
	// Untouched fields survive.
	assert.Equal(t, "owner@example.com", updated.ContactEmail)
}

func TestUpdateRejectsInvalidPlan(t *testing.T) {
	svc, db, node, _ := setupService(t)
	tenant := seed(t, db, node, "gb")

	bad := domain.Plan("enterprise")
	_, err := svc.Update(context.Background(), tenant.ID, domain.Patch{Plan: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestUpdateDomainConflict(t *testing.T) {
	svc, db, node, _ := setupService(t)
	seed(t, db, node, "taken")
	tenant := seed(t, db, node, "mine")
	ctx := context.Background()

	next := " TAKEN "
	_, err := svc.Update(ctx, tenant.ID, domain.Patch{Domain: &next})
	assert.ErrorIs(t, err, domain.ErrDomainTaken)

	// Re-casing your own domain is not a conflict.
	own := "MINE"
	updated, err := svc.Update(ctx, tenant.ID, domain.Patch{Domain: &own})
	require.NoError(t, err)
	assert.Equal(t, "MINE", updated.Domain)

	blank := "  "
	_, err = svc.Update(ctx, tenant.ID, domain.Patch{Domain: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidDomain)
}

func TestUpdateUnknownTenant(t *testing.T) {
	svc, _, node, _ := setupService(t)

	name := "x"
	_, err := svc.Update(context.Background(), node.Generate(), domain.Patch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
