package export

import "errors"

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("unsupported format")
