// Package seed bootstraps a demo academy in development so a fresh
// checkout has something to log into.
package seed

import (
	"context"
	"errors"

	provisioningdomain "github.com/tatamihq/tatami/internal/provisioning/domain"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
	"go.uber.org/zap"
)

const (
	demoTenantName    = "Gracie Barra Demo"
	demoTenantDomain  = "demo"
	demoContactEmail  = "contact@demo.tatami.local"
	demoAdminEmail    = "admin@demo.tatami.local"
	demoAdminPassword = "admin"
)

// EnsureDemoTenant provisions the demo tenant if it does not exist yet.
// Idempotent: a second startup finds the domain taken and does nothing.
func EnsureDemoTenant(ctx context.Context, log *zap.Logger, svc provisioningdomain.Service) error {
	_, err := svc.CreateTenant(ctx, provisioningdomain.Request{
		Name:          demoTenantName,
		Domain:        demoTenantDomain,
		ContactEmail:  demoContactEmail,
		AdminEmail:    demoAdminEmail,
		AdminPassword: demoAdminPassword,
		Plan:          string(tenantdomain.PlanTrial),
	})
	if errors.Is(err, tenantdomain.ErrDomainTaken) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Info("demo tenant provisioned",
		zap.String("domain", demoTenantDomain),
		zap.String("admin_email", demoAdminEmail),
	)
	return nil
}
