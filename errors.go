package bidimap

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by At when the key is absent. Errors returned
	// by At wrap it together with the offending key.
	ErrNotFound = errors.New("key not found")

	// ErrMultiValued is returned by At when the forward index admits
	// duplicate keys; direct value access is only defined for unique indices.
	ErrMultiValued = errors.New("at is unsupported on a multi-valued index")
)

func notFound(key any) error {
	return fmt.Errorf("%w: %v", ErrNotFound, key)
}
