package domain

import "errors"

var (
	ErrNotFound      = errors.New("tenant not found")
	ErrInvalidDomain = errors.New("invalid tenant domain")
	ErrInvalidPlan   = errors.New("invalid plan")
	ErrDomainTaken   = errors.New("tenant domain already taken")
)
