// Package domain holds the academy entities whose row counts are governed
// by tenant license limits. Their CRUD surfaces live elsewhere; the models
// exist so quota counts and migrations operate on real tables.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Student struct {
	ID        snowflake.ID  `gorm:"primaryKey" json:"id"`
	TenantID  snowflake.ID  `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	BranchID  *snowflake.ID `gorm:"column:branch_id" json:"branch_id,omitempty"`
	FirstName string        `gorm:"type:text;column:first_name" json:"first_name"`
	LastName  string        `gorm:"type:text;column:last_name" json:"last_name"`
	Email     string        `gorm:"type:text" json:"email"`
	BeltRank  string        `gorm:"type:text;column:belt_rank" json:"belt_rank"`
	CreatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Student) TableName() string { return "students" }

type Class struct {
	ID        snowflake.ID  `gorm:"primaryKey" json:"id"`
	TenantID  snowflake.ID  `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	BranchID  *snowflake.ID `gorm:"column:branch_id" json:"branch_id,omitempty"`
	CoachID   *snowflake.ID `gorm:"column:coach_id" json:"coach_id,omitempty"`
	Name      string        `gorm:"type:text;not null" json:"name"`
	Weekday   int           `gorm:"not null" json:"weekday"`
	CreatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Class) TableName() string { return "classes" }

type Championship struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	TenantID  snowflake.ID `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Location  string       `gorm:"type:text" json:"location"`
	HeldAt    *time.Time   `gorm:"column:held_at" json:"held_at,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Championship) TableName() string { return "championships" }

type WeightDivision struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	TenantID  snowflake.ID `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	MinKg     float64      `gorm:"column:min_kg" json:"min_kg"`
	MaxKg     float64      `gorm:"column:max_kg" json:"max_kg"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (WeightDivision) TableName() string { return "weight_divisions" }

type FightModality struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	TenantID  snowflake.ID `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (FightModality) TableName() string { return "fight_modalities" }

type Affiliation struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	TenantID  snowflake.ID `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Country   string       `gorm:"type:text" json:"country"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Affiliation) TableName() string { return "affiliations" }
