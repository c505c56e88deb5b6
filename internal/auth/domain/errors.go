package domain

import "errors"

// Authentication failures are deliberately asymmetric: a wrong email and a
// wrong password both yield ErrInvalidCredentials so the caller cannot tell
// which field was wrong, while account- and tenant-state failures get
// distinct messages. Collapsing or splitting these categories is a
// security/UX trade-off that must not happen casually.
var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidTenantDomain = errors.New("invalid tenant domain")
	ErrTenantInactive      = errors.New("tenant account is inactive")
	ErrLicenseExpired      = errors.New("tenant license has expired")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountSuspended    = errors.New("account is suspended")
	ErrAccountInactive     = errors.New("account is inactive")
)
