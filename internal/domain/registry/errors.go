package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling.
var (
	ErrDuplicateKey = errors.New("duplicate catalog key")
	ErrEmptyKey     = errors.New("empty catalog key")
	ErrNoDefinition = errors.New("source returned no definition")
)

// LoadError records a catalog source that was skipped during loading.
type LoadError struct {
	Key    string
	Origin string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Key, e.Origin, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
