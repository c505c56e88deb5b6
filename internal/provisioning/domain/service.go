// Package domain contains the provisioning contract: the one-time atomic
// creation of a tenant together with its first administrator and default
// branch, run by a platform operator.
package domain

import (
	"context"
	"errors"

	branchdomain "github.com/tatamihq/tatami/internal/branch/domain"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidPlan  = errors.New("invalid plan")
)

// Request is the operator input for creating a tenant.
type Request struct {
	Name          string `json:"name"`
	Domain        string `json:"domain"`
	ContactEmail  string `json:"contact_email"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	ContactPhone  string `json:"contact_phone"`
	Address       string `json:"address"`
	Plan          string `json:"plan"`
}

// Result carries the three records created in one transaction. The admin
// password never appears here in any form; transport projections strip the
// hash as well.
type Result struct {
	Tenant    tenantdomain.Tenant
	AdminUser userdomain.User
	Branch    branchdomain.Branch
}

type Service interface {
	// CreateTenant creates the tenant, its administrator and its default
	// branch inside one transaction; any failure rolls back all three.
	CreateTenant(ctx context.Context, req Request) (*Result, error)
}
