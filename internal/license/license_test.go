package license

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tenantdomain "github.com/tatamihq/tatami/internal/tenant/domain"
)

func tenantAt(active bool, licenseEnd time.Time) *tenantdomain.Tenant {
	return &tenantdomain.Tenant{
		IsActive:     active,
		LicenseStart: licenseEnd.AddDate(0, 0, -14),
		LicenseEnd:   licenseEnd,
	}
}

func TestOperableWhileLicensed(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tenant := tenantAt(true, end)

	assert.True(t, IsOperable(tenant, end.Add(-time.Second)))
	assert.Equal(t, ReasonNone, ReasonIfNot(tenant, end.Add(-time.Second)))
}

func TestExpiresExactlyAtLicenseEnd(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tenant := tenantAt(true, end)

	// now == licenseEnd is already expired; only strictly-before passes.
	assert.False(t, IsOperable(tenant, end))
	assert.Equal(t, ReasonExpired, ReasonIfNot(tenant, end))
	assert.Equal(t, ReasonExpired, ReasonIfNot(tenant, end.Add(time.Second)))
}

func TestInactiveWinsOverExpiry(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tenant := tenantAt(false, end)

	// Both gates fail after expiry; the inactive reason is reported.
	assert.Equal(t, ReasonInactive, ReasonIfNot(tenant, end.Add(time.Hour)))
	assert.Equal(t, ReasonInactive, ReasonIfNot(tenant, end.Add(-time.Hour)))
	assert.False(t, IsOperable(tenant, end.Add(-time.Hour)))
}
