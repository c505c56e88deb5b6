package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	academydomain "github.com/tatamihq/tatami/internal/academy/domain"
	branchdomain "github.com/tatamihq/tatami/internal/branch/domain"
	"github.com/tatamihq/tatami/internal/quota/domain"
	quotarepo "github.com/tatamihq/tatami/internal/quota/repository"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	tenantrepo "github.com/tatamihq/tatami/internal/tenant/repository"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&tenantdomain.Tenant{},
		&userdomain.User{},
		&branchdomain.Branch{},
		&academydomain.Student{},
		&academydomain.Class{},
		&academydomain.Championship{},
		&academydomain.WeightDivision{},
		&academydomain.FightModality{},
		&academydomain.Affiliation{},
	))
	return db
}

func setupService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()
	db := setupTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	svc := NewService(zap.NewNop(), tenantrepo.NewRepository(db), quotarepo.NewRepository(db))
	return svc, db, node
}

func seedTenant(t *testing.T, db *gorm.DB, node *snowflake.Node, limits tenantdomain.LicenseLimits) snowflake.ID {
	t.Helper()
	tenant := tenantdomain.Tenant{
		ID:            node.Generate(),
		Domain:        "quota-" + node.Generate().String(),
		Name:          "Quota Academy",
		Plan:          tenantdomain.PlanTrial,
		ContactEmail:  "owner@example.com",
		IsActive:      true,
		LicenseLimits: datatypes.NewJSONType(limits),
	}
	require.NoError(t, db.Create(&tenant).Error)
	return tenant.ID
}

func seedStudents(t *testing.T, db *gorm.DB, node *snowflake.Node, tenantID snowflake.ID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&academydomain.Student{
			ID:       node.Generate(),
			TenantID: tenantID,
		}).Error)
	}
}

func TestCheckAdmissionBoundary(t *testing.T) {
	svc, db, node := setupService(t)
	tenantID := seedTenant(t, db, node, tenantdomain.LicenseLimits{Students: 5})
	ctx := context.Background()

	seedStudents(t, db, node, tenantID, 4)
	decision, err := svc.CheckAdmission(ctx, tenantID, domain.CategoryStudents)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, int64(4), decision.Current)
	assert.Equal(t, int64(1), decision.Remaining)

	// At the limit the next insert is denied: allowed means current < limit.
	seedStudents(t, db, node, tenantID, 1)
	decision, err = svc.CheckAdmission(ctx, tenantID, domain.CategoryStudents)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(5), decision.Current)
	assert.Equal(t, int64(0), decision.Remaining)
	assert.Equal(t, "Plan limit reached", decision.Reason)
}

func TestCheckAdmissionWindowIsNotSerialized(t *testing.T) {
	svc, db, node := setupService(t)
	tenantID := seedTenant(t, db, node, tenantdomain.LicenseLimits{Students: 5})
	ctx := context.Background()

	seedStudents(t, db, node, tenantID, 4)

	// Two requests both run the read-only pre-check before either
	// inserts; with no shared lock both see current == limit-1 and pass.
	first, err := svc.CheckAdmission(ctx, tenantID, domain.CategoryStudents)
	require.NoError(t, err)
	second, err := svc.CheckAdmission(ctx, tenantID, domain.CategoryStudents)
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.True(t, second.Allowed)

	// Both inserts then land, leaving the tenant one past its limit.
	// Admission is a pre-check, not a gate that serializes writers.
	seedStudents(t, db, node, tenantID, 2)

	decision, err := svc.CheckAdmission(ctx, tenantID, domain.CategoryStudents)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(6), decision.Current)

	snapshot, err := svc.Snapshot(ctx, tenantID)
	require.NoError(t, err)
	assert.True(t, snapshot.Categories[domain.CategoryStudents].IsOverLimit)
}

func TestCheckAdmissionUnlimitedSkipsCounting(t *testing.T) {
	svc, db, node := setupService(t)
	tenantID := seedTenant(t, db, node, tenantdomain.LicenseLimits{Students: tenantdomain.Unlimited})
	seedStudents(t, db, node, tenantID, 3)

	decision, err := svc.CheckAdmission(context.Background(), tenantID, domain.CategoryStudents)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	// Unlimited short-circuits before the count query runs.
	assert.Equal(t, int64(0), decision.Current)
	assert.Equal(t, int64(tenantdomain.Unlimited), decision.Remaining)
	assert.Equal(t, "Unlimited plan", decision.Reason)
}

func TestCheckAdmissionZeroLimitDeniesFirstItem(t *testing.T) {
	svc, db, node := setupService(t)
	tenantID := seedTenant(t, db, node, tenantdomain.LicenseLimits{Championships: 0})

	decision, err := svc.CheckAdmission(context.Background(), tenantID, domain.CategoryChampionships)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(0), decision.Current)
}

func TestCheckAdmissionUnknownCategory(t *testing.T) {
	svc, db, node := setupService(t)
	tenantID := seedTenant(t, db, node, tenantdomain.LicenseLimits{})

	_, err := svc.CheckAdmission(context.Background(), tenantID, domain.Category("referees"))
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestCheckAdmissionUnknownTenant(t *testing.T) {
	svc, _, node := setupService(t)

	_, err := svc.CheckAdmission(context.Background(), node.Generate(), domain.CategoryStudents)
	assert.ErrorIs(t, err, tenantdomain.ErrNotFound)
}

func TestCoachesCountedFromUsers(t *testing.T) {
	svc, db, node := setupService(t)
	tenantID := seedTenant(t, db, node, tenantdomain.LicenseLimits{Coaches: 2})

	for _, role := range []userdomain.Role{userdomain.RoleCoach, userdomain.RoleCoach, userdomain.RoleStudent, userdomain.RoleSystemManager} {
		require.NoError(t, db.Create(&userdomain.User{
			ID:           node.Generate(),
			TenantID:     tenantID,
			Email:        node.Generate().String() + "@example.com",
			PasswordHash: "x",
			Role:         role,
			Status:       userdomain.StatusActive,
		}).Error)
	}

	decision, err := svc.CheckAdmission(context.Background(), tenantID, domain.CategoryCoaches)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(2), decision.Current)
}

func TestSnapshotAggregates(t *testing.T) {
	svc, db, node := setupService(t)
	limits := tenantdomain.LicenseLimits{
		Students:        10,
		Coaches:         5,
		Branches:        1,
		Classes:         tenantdomain.Unlimited,
		Championships:   2,
		WeightDivisions: 10,
		FightModalities: 5,
		Affiliations:    3,
	}
	tenantID := seedTenant(t, db, node, limits)

	seedStudents(t, db, node, tenantID, 8) // 80% of 10: near limit
	require.NoError(t, db.Create(&academydomain.Championship{ID: node.Generate(), TenantID: tenantID, Name: "Open"}).Error)
	require.NoError(t, db.Create(&academydomain.Championship{ID: node.Generate(), TenantID: tenantID, Name: "Regional"}).Error)
	require.NoError(t, db.Create(&academydomain.Championship{ID: node.Generate(), TenantID: tenantID, Name: "Nationals"}).Error) // over limit
	require.NoError(t, db.Create(&academydomain.Class{ID: node.Generate(), TenantID: tenantID, Name: "Fundamentals"}).Error)

	snapshot, err := svc.Snapshot(context.Background(), tenantID)
	require.NoError(t, err)
	require.Len(t, snapshot.Categories, 8)

	students := snapshot.Categories[domain.CategoryStudents]
	assert.Equal(t, int64(8), students.Current)
	assert.Equal(t, 80, students.Percentage)
	assert.False(t, students.IsOverLimit)

	championships := snapshot.Categories[domain.CategoryChampionships]
	assert.Equal(t, int64(3), championships.Current)
	assert.Equal(t, 150, championships.Percentage)
	assert.True(t, championships.IsOverLimit)
	assert.Equal(t, int64(0), championships.Remaining)

	classes := snapshot.Categories[domain.CategoryClasses]
	assert.True(t, classes.IsUnlimited)
	assert.Equal(t, int64(1), classes.Current)
	assert.Equal(t, 0, classes.Percentage)

	assert.Equal(t, int64(12), snapshot.TotalItems)
	assert.Equal(t, 1, snapshot.OverLimitItems)
	// Students (80%) and championships (150%) are both at or past the
	// near-limit threshold.
	assert.Equal(t, 2, snapshot.NearLimitItems)
}

func TestSnapshotPercentageAtExactLimit(t *testing.T) {
	svc, db, node := setupService(t)
	tenantID := seedTenant(t, db, node, tenantdomain.LicenseLimits{Students: 8})
	seedStudents(t, db, node, tenantID, 8)

	snapshot, err := svc.Snapshot(context.Background(), tenantID)
	require.NoError(t, err)

	// Sitting exactly at the limit is full, not over.
	students := snapshot.Categories[domain.CategoryStudents]
	assert.Equal(t, 100, students.Percentage)
	assert.False(t, students.IsOverLimit)
	assert.Equal(t, int64(0), students.Remaining)
	assert.Equal(t, 0, snapshot.OverLimitItems)
	assert.Equal(t, 1, snapshot.NearLimitItems)
}

func TestSnapshotIsolatedPerTenant(t *testing.T) {
	svc, db, node := setupService(t)
	first := seedTenant(t, db, node, tenantdomain.LicenseLimits{Students: 10})
	second := seedTenant(t, db, node, tenantdomain.LicenseLimits{Students: 10})

	seedStudents(t, db, node, first, 4)
	seedStudents(t, db, node, second, 1)

	snapshot, err := svc.Snapshot(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, int64(4), snapshot.Categories[domain.CategoryStudents].Current)
}
