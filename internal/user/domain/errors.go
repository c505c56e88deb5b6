package domain

import "errors"

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailTaken  = errors.New("email already taken for tenant")
	ErrInvalidUser = errors.New("invalid user")
)
