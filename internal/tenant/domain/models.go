// Package domain contains core types for the tenant service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Plan identifies the subscription tier of a tenant.
type Plan string

const (
	PlanTrial    Plan = "trial"
	PlanStandard Plan = "standard"
	PlanPremium  Plan = "premium"
)

// ValidPlan reports whether p is a known plan.
func ValidPlan(p Plan) bool {
	switch p {
	case PlanTrial, PlanStandard, PlanPremium:
		return true
	default:
		return false
	}
}

// Settings holds per-tenant configuration. Unknown JSON keys are ignored on
// load so older rows survive schema growth.
type Settings struct {
	Currency string   `json:"currency"`
	Locale   string   `json:"locale"`
	Timezone string   `json:"timezone"`
	Features Features `json:"features"`
}

// Features are plan-gated capabilities.
type Features struct {
	ChampionshipManagement bool `json:"championship_management"`
	AttendanceTracking     bool `json:"attendance_tracking"`
}

// Unlimited is the sentinel limit meaning no ceiling for a resource category.
const Unlimited = -1

// LicenseLimits maps each quota-governed resource category to its ceiling.
// A value of Unlimited (-1) disables the ceiling for that category.
type LicenseLimits struct {
	Students        int `json:"students"`
	Coaches         int `json:"coaches"`
	Branches        int `json:"branches"`
	Classes         int `json:"classes"`
	Championships   int `json:"championships"`
	WeightDivisions int `json:"weight_divisions"`
	FightModalities int `json:"fight_modalities"`
	Affiliations    int `json:"affiliations"`
}

// For returns the configured limit for a category key.
func (l LicenseLimits) For(category string) (int, bool) {
	switch category {
	case "students":
		return l.Students, true
	case "coaches":
		return l.Coaches, true
	case "branches":
		return l.Branches, true
	case "classes":
		return l.Classes, true
	case "championships":
		return l.Championships, true
	case "weight_divisions":
		return l.WeightDivisions, true
	case "fight_modalities":
		return l.FightModalities, true
	case "affiliations":
		return l.Affiliations, true
	default:
		return 0, false
	}
}

// Tenant represents an isolated academy organization.
type Tenant struct {
	ID            snowflake.ID                       `gorm:"primaryKey" json:"id"`
	Domain        string                             `gorm:"type:text;not null" json:"domain"`
	Name          string                             `gorm:"type:text;not null" json:"name"`
	Plan          Plan                               `gorm:"type:text;not null" json:"plan"`
	ContactEmail  string                             `gorm:"type:text;not null;column:contact_email" json:"contact_email"`
	ContactPhone  string                             `gorm:"type:text;column:contact_phone" json:"contact_phone"`
	Address       string                             `gorm:"type:text" json:"address"`
	IsActive      bool                               `gorm:"column:is_active;not null" json:"is_active"`
	LicenseStart  time.Time                          `gorm:"column:license_start;not null" json:"license_start"`
	LicenseEnd    time.Time                          `gorm:"column:license_end;not null" json:"license_end"`
	Settings      datatypes.JSONType[Settings]       `gorm:"type:jsonb;column:settings" json:"settings"`
	LicenseLimits datatypes.JSONType[LicenseLimits]  `gorm:"type:jsonb;column:license_limits" json:"license_limits"`
	CreatedAt     time.Time                          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                          `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Tenant) TableName() string { return "tenants" }

// Patch enumerates the mutable tenant fields for administrative updates.
// Nil fields are left untouched.
type Patch struct {
	Name         *string
	Domain       *string
	Plan         *Plan
	ContactEmail *string
	ContactPhone *string
	Address      *string
	IsActive     *bool
	Settings     *Settings
}

// View is the sanitized tenant projection returned to clients.
type View struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Domain       string    `json:"domain"`
	Plan         Plan      `json:"plan"`
	LicenseStart time.Time `json:"license_start"`
	LicenseEnd   time.Time `json:"license_end"`
	IsActive     bool      `json:"is_active"`
	Settings     Settings  `json:"settings"`
}

// ViewOf projects a tenant for client responses.
func ViewOf(t *Tenant) View {
	return View{
		ID:           t.ID.String(),
		Name:         t.Name,
		Domain:       t.Domain,
		Plan:         t.Plan,
		LicenseStart: t.LicenseStart,
		LicenseEnd:   t.LicenseEnd,
		IsActive:     t.IsActive,
		Settings:     t.Settings.Data(),
	}
}
