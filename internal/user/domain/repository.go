package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, user *User) error
	// FindByTenantAndEmail matches email case-insensitively within a
	// single tenant. Returns ErrNotFound on zero matches.
	FindByTenantAndEmail(ctx context.Context, tenantID snowflake.ID, email string) (*User, error)
	FindByID(ctx context.Context, id snowflake.ID) (*User, error)
	// UpdateLastLogin is scoped to (id, tenantID) so a stale id can never
	// touch another tenant's row.
	UpdateLastLogin(ctx context.Context, id, tenantID snowflake.ID, at time.Time) error
}
