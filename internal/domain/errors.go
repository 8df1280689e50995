package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrUpstream         = errors.New("upstream provider failed")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrReadOnly         = errors.New("store is read-only")
)
