package export

import (
	"fmt"
	"sort"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatComponent produces the page-wrapper component (Root.js).
	FormatComponent Format = "component"

	// FormatJSONLD produces the bare JSON-LD node array (.jsonld).
	FormatJSONLD Format = "jsonld"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// DefaultFile is the file name used when no output file is configured.
	DefaultFile string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatComponent: {
		Name:        FormatComponent,
		MIMEType:    "text/javascript",
		Extension:   ".js",
		DefaultFile: "Root.js",
		Description: "Page wrapper component rendering JSON-LD script tags",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		DefaultFile: "structured-data.jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format name. The empty string selects the component.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatComponent, nil
	}
	if _, ok := FormatRegistry[Format(name)]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, name, strings.Join(FormatNames(), ", "))
	}
	return Format(name), nil
}

// FormatNames lists the supported format names, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for f := range FormatRegistry {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
