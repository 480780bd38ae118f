package config

import "errors"

var (
	// ErrMissingSiteURL is returned when site.url is not configured.
	ErrMissingSiteURL = errors.New("site.url is required")

	// ErrMissingSiteTitle is returned when site.title is not configured.
	ErrMissingSiteTitle = errors.New("site.title is required")
)
