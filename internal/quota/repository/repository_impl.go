package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/tatamihq/tatami/internal/quota/domain"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
	"gorm.io/gorm"
)

// categoryTables maps each simple category to the table it counts. Coaches
// are special-cased: they are users with the coach role, not their own
// table.
var categoryTables = map[domain.Category]string{
	domain.CategoryStudents:        "students",
	domain.CategoryBranches:        "branches",
	domain.CategoryClasses:         "classes",
	domain.CategoryChampionships:   "championships",
	domain.CategoryWeightDivisions: "weight_divisions",
	domain.CategoryFightModalities: "fight_modalities",
	domain.CategoryAffiliations:    "affiliations",
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context, tenantID snowflake.ID, category domain.Category) (int64, error) {
	if category == domain.CategoryCoaches {
		var count int64
		err := r.db.WithContext(ctx).
			Table("users").
			Where("tenant_id = ?", tenantID).
			Where("role = ?", userdomain.RoleCoach).
			Count(&count).Error
		return count, err
	}

	table, ok := categoryTables[category]
	if !ok {
		return 0, domain.ErrUnknownCategory
	}

	var count int64
	err := r.db.WithContext(ctx).
		Table(table).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error
	return count, err
}
