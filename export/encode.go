package export

import (
	"bytes"
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"github.com/goccy/go-json"
	"github.com/opencontainers/go-digest"
)

var (
	lineSeparator      = []byte("\u2028")
	paragraphSeparator = []byte("\u2029")
)

// marshalScriptSafe encodes v as indented JSON that is safe to embed in a
// script element: <, > and & are escaped as \u00XX sequences, so neither
// "</script>" nor "<!--" can appear, and the JavaScript line terminators
// U+2028 and U+2029 are escaped too. Map keys are sorted.
func marshalScriptSafe(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	enc.SetIndent(indent, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = bytes.ReplaceAll(out, lineSeparator, []byte(`\u2028`))
	out = bytes.ReplaceAll(out, paragraphSeparator, []byte(`\u2029`))
	return out, nil
}

// contentDigest returns the sha256 digest of the RFC 8785 canonical form of v.
func contentDigest(v any) (digest.Digest, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal structured data: %w", err)
	}
	canonical, err := jsoncanonicalizer.Transform(data)
	if err != nil {
		return "", fmt.Errorf("canonicalize structured data: %w", err)
	}
	return digest.FromBytes(canonical), nil
}
