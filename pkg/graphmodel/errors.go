package graphmodel

import (
	"errors"
	"fmt"
)

// Errors returned by the factory, the reducer and Validate. They are
// wrapped with the offending id or event type; match with errors.Is.
var (
	ErrUnknownEventKind = errors.New("unknown event kind")
	ErrMissingEntity    = errors.New("missing entity reference")
	ErrInvalidConfig    = errors.New("invalid node config")
	ErrBrokenInvariant  = errors.New("graph state invariant violated")
)

func missing(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrMissingEntity, kind, id)
}
