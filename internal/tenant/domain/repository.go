package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, tenant *Tenant) error
	// FindActiveByDomain resolves a login identifier. Matching is
	// whitespace- and case-insensitive and only active tenants are
	// candidates, so an inactive tenant is indistinguishable from an
	// absent one. Returns ErrNotFound on zero matches.
	FindActiveByDomain(ctx context.Context, identifier string) (*Tenant, error)
	// DomainExists reports whether any tenant, active or not, already
	// holds the normalized identifier.
	DomainExists(ctx context.Context, identifier string) (bool, error)
	FindByID(ctx context.Context, id snowflake.ID) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
}
