package schema

import "errors"

var (
	// ErrInvalidSection is returned for a base-schema section of the wrong shape.
	ErrInvalidSection = errors.New("invalid base schema section")
)
