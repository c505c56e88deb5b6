package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// ResolveByDomain finds the operable-candidate tenant for a login
	// identifier. License validity is not checked here; callers run the
	// license validator on the returned record.
	ResolveByDomain(ctx context.Context, identifier string) (*Tenant, error)
	GetByID(ctx context.Context, id snowflake.ID) (*Tenant, error)
	Update(ctx context.Context, id snowflake.ID, patch Patch) (*Tenant, error)
}
