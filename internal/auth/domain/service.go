package domain

import (
	"context"

	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	userdomain "github.com/tatamihq/tatami/internal/user/domain"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	// Authenticate resolves a bearer token back to its sanitized user and
	// tenant projections.
	Authenticate(ctx context.Context, rawToken string) (*Identity, error)
}

// LoginRequest carries the credentials and the organization identifier the
// user typed at the login screen.
type LoginRequest struct {
	Email     string
	Password  string
	OrgDomain string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token  string            `json:"token"`
	User   userdomain.View   `json:"user"`
	Tenant tenantdomain.View `json:"tenant"`
}

// Identity is the resolved owner of a verified session token.
type Identity struct {
	User   userdomain.View   `json:"user"`
	Tenant tenantdomain.View `json:"tenant"`
}
