package content

import "errors"

var (
	// ErrMissingRoute is returned when a manifest item has no route.
	ErrMissingRoute = errors.New("item has no route")
)
