package schema

import (
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// Text normalizes a human-readable value: control characters are dropped and
// whitespace runs collapse to a single space.
func Text(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// URL normalizes a URL value. Values containing whitespace or control
// characters inside are rejected and yield "".
func URL(s string) string {
	s = strings.TrimSpace(s)
	if strings.IndexFunc(s, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return ""
	}
	return s
}

// ResolveURL resolves ref against the site. Absolute and protocol-relative
// references are returned unchanged; everything else is treated as a route
// below the site's base path.
func ResolveURL(site content.Site, ref string) string {
	ref = URL(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "//") {
		return ref
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}

	root := strings.TrimRight(URL(site.URL), "/")
	if root == "" {
		return ""
	}
	p := path.Join("/", site.BaseURL, ref)
	if strings.HasSuffix(ref, "/") && p != "/" {
		p += "/"
	}
	return root + p
}

// SiteURL returns the canonical URL of the site root, including a non-root
// base path.
func SiteURL(site content.Site) string {
	root := URL(site.URL)
	base := strings.Trim(site.BaseURL, "/")
	if base == "" || root == "" {
		return root
	}
	return strings.TrimRight(root, "/") + "/" + base + "/"
}

// Date formats t as a schema.org Date when it has no time of day, otherwise
// as an ISO 8601 date-time.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 && t.Location() == time.UTC {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

// Set stores a text value; empty values are not stored.
func (n Node) Set(key, value string) Node {
	if v := Text(value); v != "" {
		n[key] = v
	}
	return n
}

// SetURL stores a URL value; empty or malformed values are not stored.
func (n Node) SetURL(key, value string) Node {
	if v := URL(value); v != "" {
		n[key] = v
	}
	return n
}

// SetDate stores a date; zero times are not stored.
func (n Node) SetDate(key string, t time.Time) Node {
	if v := Date(t); v != "" {
		n[key] = v
	}
	return n
}

// SetNode stores a nested node when it carries data beyond its @type.
func (n Node) SetNode(key string, child Node) Node {
	if child != nil && child.hasData() {
		n[key] = child
	}
	return n
}

// SetStrings stores the non-empty values of a list.
func (n Node) SetStrings(key string, values []string) Node {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if t := Text(v); t != "" {
			out = append(out, t)
		}
	}
	if len(out) > 0 {
		n[key] = out
	}
	return n
}

// Compact removes null, empty-string and empty-collection values from the
// node, recursively. Nested nodes left with nothing but @type are removed too.
// time.Time values become schema.org dates.
func Compact(n Node) Node {
	for k, v := range n {
		c, keep := compactValue(v)
		if !keep {
			delete(n, k)
			continue
		}
		n[k] = c
	}
	return n
}

func compactValue(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		return t, strings.TrimSpace(t) != ""
	case time.Time:
		d := Date(t)
		return d, d != ""
	case Node:
		Compact(t)
		return t, t.hasData()
	case map[string]any:
		n := Compact(Node(t))
		return n, n.hasData()
	case []Node:
		out := make([]Node, 0, len(t))
		for _, e := range t {
			if Compact(e).hasData() {
				out = append(out, e)
			}
		}
		return out, len(out) > 0
	case []any:
		out := make([]any, 0, len(t))
		for _, e := range t {
			if c, keep := compactValue(e); keep {
				out = append(out, c)
			}
		}
		return out, len(out) > 0
	case []string:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if strings.TrimSpace(e) != "" {
				out = append(out, e)
			}
		}
		return out, len(out) > 0
	default:
		return v, true
	}
}

// stripNestedContext removes @context from every node nested below n.
func stripNestedContext(n Node) {
	for _, v := range n {
		stripContextValue(v)
	}
}

func stripContextValue(v any) {
	switch t := v.(type) {
	case Node:
		delete(t, schemaorg.KeyContext)
		stripNestedContext(t)
	case []Node:
		for _, e := range t {
			stripContextValue(e)
		}
	case []any:
		for _, e := range t {
			stripContextValue(e)
		}
	}
}
