// Package domain contains the quota admission-control types.
package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// Category names a quota-governed resource. The set is fixed and closed;
// adding one requires extending both the license-limits schema and the
// counting repository.
type Category string

const (
	CategoryStudents        Category = "students"
	CategoryCoaches         Category = "coaches"
	CategoryBranches        Category = "branches"
	CategoryClasses         Category = "classes"
	CategoryChampionships   Category = "championships"
	CategoryWeightDivisions Category = "weight_divisions"
	CategoryFightModalities Category = "fight_modalities"
	CategoryAffiliations    Category = "affiliations"
)

// Categories lists every quota-governed resource in snapshot order.
var Categories = []Category{
	CategoryStudents,
	CategoryCoaches,
	CategoryBranches,
	CategoryClasses,
	CategoryChampionships,
	CategoryWeightDivisions,
	CategoryFightModalities,
	CategoryAffiliations,
}

var ErrUnknownCategory = errors.New("unknown resource category")

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryUsage is the per-category slice of a usage snapshot.
type CategoryUsage struct {
	Current     int64 `json:"current"`
	Limit       int   `json:"limit"`
	Remaining   int64 `json:"remaining"`
	Percentage  int   `json:"percentage"`
	IsOverLimit bool  `json:"is_over_limit"`
	IsUnlimited bool  `json:"is_unlimited"`
}

// UsageSnapshot is recomputed from live counts on every request and never
// cached.
type UsageSnapshot struct {
	TenantID       string                     `json:"tenant_id"`
	Categories     map[Category]CategoryUsage `json:"categories"`
	TotalItems     int64                      `json:"total_items"`
	OverLimitItems int                        `json:"over_limit_items"`
	NearLimitItems int                        `json:"near_limit_items"`
}

// AdmissionDecision answers whether one more row of a category may be
// inserted for a tenant.
type AdmissionDecision struct {
	Allowed   bool     `json:"allowed"`
	Category  Category `json:"category"`
	Current   int64    `json:"current"`
	Limit     int      `json:"limit"`
	Remaining int64    `json:"remaining"`
	Reason    string   `json:"reason"`
}

type Repository interface {
	// Count returns the live number of rows of a category owned by the
	// tenant. Counting is read-only; it takes no locks.
	Count(ctx context.Context, tenantID snowflake.ID, category Category) (int64, error)
}

type Service interface {
	Snapshot(ctx context.Context, tenantID snowflake.ID) (*UsageSnapshot, error)
	// CheckAdmission is the pre-insert gate used by entity-creation
	// handlers. The check and the subsequent insert are two separate
	// operations with no shared lock, so two concurrent requests can both
	// pass at current == limit-1; this check-then-act window is a known,
	// documented limitation rather than a hard guarantee.
	CheckAdmission(ctx context.Context, tenantID snowflake.ID, category Category) (*AdmissionDecision, error)
}
