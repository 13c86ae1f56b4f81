package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"portfolio/internal/domain"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = domain.ErrNotFound
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError lists the offending fields keyed by json name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + e.Fields[k]
	}
	return "validation error: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, rule string) error {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// storageErr keeps domain sentinels as they are and tags everything else as
// a storage failure so handlers can tell the two apart.
func storageErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return err
	case errors.Is(err, domain.ErrDuplicate):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
	}
}
