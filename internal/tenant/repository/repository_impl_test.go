package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatamihq/tatami/internal/tenant/domain"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) (domain.Repository, *gorm.DB, *snowflake.Node) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Tenant{}))
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewRepository(db), db, node
}

func storedTenant(node *snowflake.Node, dom string, active bool) *domain.Tenant {
	return &domain.Tenant{
		ID:           node.Generate(),
		Domain:       dom,
		Name:         "Academy",
		Plan:         domain.PlanTrial,
		ContactEmail: "owner@example.com",
		IsActive:     active,
	}
}

func TestFindActiveByDomainNormalization(t *testing.T) {
	repo, db, node := setupRepo(t)
	ctx := context.Background()

	// Stored value itself carries stray whitespace and mixed case.
	seeded := storedTenant(node, "  GB-BR-RJ-01 ", true)
	require.NoError(t, db.Create(seeded).Error)

	for _, identifier := range []string{"gb-br-rj-01", "GB-BR-RJ-01", "  gb-Br-rj-01  "} {
		found, err := repo.FindActiveByDomain(ctx, identifier)
		require.NoError(t, err, "identifier=%q", identifier)
		assert.Equal(t, seeded.ID, found.ID)
	}

	_, err := repo.FindActiveByDomain(ctx, "gb-br-rj-02")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindActiveByDomainSkipsInactive(t *testing.T) {
	repo, db, node := setupRepo(t)
	require.NoError(t, db.Create(storedTenant(node, "dormant", false)).Error)

	_, err := repo.FindActiveByDomain(context.Background(), "dormant")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDomainExistsIncludesInactive(t *testing.T) {
	repo, db, node := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, db.Create(storedTenant(node, "dormant", false)).Error)

	// Uniqueness spans inactive tenants even though resolution skips them.
	taken, err := repo.DomainExists(ctx, " DORMANT ")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.DomainExists(ctx, "fresh")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestFindByID(t *testing.T) {
	repo, db, node := setupRepo(t)
	ctx := context.Background()
	seeded := storedTenant(node, "gb", true)
	require.NoError(t, db.Create(seeded).Error)

	found, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Domain, found.Domain)

	_, err = repo.FindByID(ctx, node.Generate())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
