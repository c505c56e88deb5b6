// Package license decides whether a tenant is permitted to operate.
package license

import (
	"time"

	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
)

// Reason explains why a tenant is not operable.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonInactive Reason = "inactive"
	ReasonExpired  Reason = "expired"
)

// IsOperable reports whether the tenant may operate at the given instant.
// A tenant is operable iff it is active and now is before licenseEnd.
func IsOperable(tenant *tenantdomain.Tenant, now time.Time) bool {
	return ReasonIfNot(tenant, now) == ReasonNone
}

// ReasonIfNot returns the first reason the tenant cannot operate, or
// ReasonNone. The inactive gate wins over expiry when both apply.
func ReasonIfNot(tenant *tenantdomain.Tenant, now time.Time) Reason {
	if !tenant.IsActive {
		return ReasonInactive
	}
	if !now.Before(tenant.LicenseEnd) {
		return ReasonExpired
	}
	return ReasonNone
}
