// Package domain contains core types for the user service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Role identifies the coarse access level of a user within its tenant.
type Role string

const (
	RoleSystemManager Role = "system_manager"
	RoleCoach         Role = "coach"
	RoleStudent       Role = "student"
)

// Status is the account lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

// User is an account owned by exactly one tenant. Email is unique within
// the tenant, not globally.
type User struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	TenantID     snowflake.ID  `gorm:"column:tenant_id;not null;index" json:"tenant_id"`
	Email        string        `gorm:"type:text;not null" json:"email"`
	PasswordHash string        `gorm:"type:text;not null;column:password_hash" json:"-"`
	FirstName    string        `gorm:"type:text;column:first_name" json:"first_name"`
	LastName     string        `gorm:"type:text;column:last_name" json:"last_name"`
	Role         Role          `gorm:"type:text;not null" json:"role"`
	Status       Status        `gorm:"type:text;not null" json:"status"`
	BranchID     *snowflake.ID `gorm:"column:branch_id" json:"branch_id,omitempty"`
	LastLoginAt  *time.Time    `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }

// View is the sanitized user projection returned to clients. It never
// carries the password hash.
type View struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Role        Role       `json:"role"`
	Status      Status     `json:"status"`
	BranchID    *string    `json:"branch_id,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ViewOf projects a user for client responses.
func ViewOf(u *User) View {
	view := View{
		ID:          u.ID.String(),
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		Status:      u.Status,
		LastLoginAt: u.LastLoginAt,
	}
	if u.BranchID != nil {
		id := u.BranchID.String()
		view.BranchID = &id
	}
	return view
}
