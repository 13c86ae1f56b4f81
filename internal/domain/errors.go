package domain

import "errors"

// Storage-level sentinels shared by repositories and services.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
