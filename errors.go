package hdltypes

import (
	"errors"
)

var (
	// ErrInvalidValue reports input that does not name a Logic or Bit state.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDomain reports a well-formed value that has no representation in the
	// requested narrower type, e.g. Logic 'Z' as a Bit.
	ErrDomain = errors.New("value not convertible to a two-valued representation")

	// ErrOutOfRange reports an index or sub-range outside a container's bounds.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument reports a violated structural precondition such as a
	// slice direction mismatch or a length mismatch on assignment.
	ErrInvalidArgument = errors.New("invalid argument")
)
