// Package domain contains core types for branches (training locations).
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Branch is a physical training location belonging to a tenant. Every
// tenant gets a default branch at provisioning time so students and
// classes have somewhere to attach immediately.
type Branch struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	TenantID  snowflake.ID `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Name      string       `gorm:"type:text;not null" json:"name"`
	Address   string       `gorm:"type:text" json:"address"`
	City      string       `gorm:"type:text" json:"city"`
	ManagerID snowflake.ID `gorm:"column:manager_id" json:"manager_id"`
	Capacity  int          `gorm:"not null" json:"capacity"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Branch) TableName() string { return "branches" }

// View is the branch projection returned to clients.
type View struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id"`
	Capacity  int    `json:"capacity"`
}

// ViewOf projects a branch for client responses.
func ViewOf(b *Branch) View {
	return View{
		ID:        b.ID.String(),
		Name:      b.Name,
		ManagerID: b.ManagerID.String(),
		Capacity:  b.Capacity,
	}
}
