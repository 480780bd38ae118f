package content

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// yamlFormat reads the leading "---" block with yaml.v3 so nested values decode
// into map[string]any and timestamps into time.Time.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// frontMatter is the decoded metadata block of one source file.
type frontMatter map[string]any

// readFrontMatter decodes the front matter of path. The document body is
// discarded.
func readFrontMatter(path string) (frontMatter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fm := frontMatter{}
	if _, err := frontmatter.Parse(f, &fm, yamlFormat); err != nil {
		return nil, fmt.Errorf("parse front matter %s: %w", path, err)
	}
	return fm, nil
}

func (fm frontMatter) string(key string) string {
	return asString(fm[key])
}

func (fm frontMatter) bool(key string) bool {
	switch v := fm[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	}
	return false
}

func (fm frontMatter) time(key string) time.Time {
	t, _ := parseDate(fm[key])
	return t
}

// strings reads a string or a list of strings. List entries that are mappings
// contribute their "label".
func (fm frontMatter) strings(key string) []string {
	switch v := fm[key].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			var s string
			if m, ok := e.(map[string]any); ok {
				s = asString(m["label"])
			} else {
				s = asString(e)
			}
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// modified reads last_update.date, falling back to "updated".
func (fm frontMatter) modified() time.Time {
	if m, ok := fm["last_update"].(map[string]any); ok {
		if t, ok := parseDate(m["date"]); ok {
			return t
		}
	}
	return fm.time("updated")
}

// authors collects authors from the legacy author_* keys and the authors key,
// which may hold registry keys, inline mappings or a mix of both.
func (fm frontMatter) authors(registry Authors) []Author {
	var out []Author
	if name := fm.string("author"); name != "" {
		out = append(out, Author{
			Name:     name,
			Title:    fm.string("author_title"),
			URL:      fm.string("author_url"),
			ImageURL: fm.string("author_image_url"),
		})
	}

	add := func(v any) {
		switch a := v.(type) {
		case string:
			if author, ok := registry.Resolve(a); ok {
				out = append(out, author)
			}
		case map[string]any:
			out = append(out, authorFromMap(a, registry))
		}
	}

	switch v := fm["authors"].(type) {
	case []any:
		for _, e := range v {
			add(e)
		}
	default:
		add(v)
	}
	return out
}

func authorFromMap(m map[string]any, registry Authors) Author {
	var author Author
	if key := asString(m["key"]); key != "" {
		author, _ = registry.Resolve(key)
	}
	if s := asString(m["name"]); s != "" {
		author.Name = s
	}
	if s := asString(m["title"]); s != "" {
		author.Title = s
	}
	if s := asString(m["url"]); s != "" {
		author.URL = s
	}
	if s := asString(m["image_url"]); s != "" {
		author.ImageURL = s
	}
	return author
}

// service reads the service hint: true, a service type string, or a mapping.
func (fm frontMatter) service() *Service {
	switch v := fm["service"].(type) {
	case bool:
		if v {
			return &Service{}
		}
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return &Service{Type: s}
		}
	case map[string]any:
		return &Service{
			Name:        asString(v["name"]),
			Type:        firstNonEmpty(asString(v["serviceType"]), asString(v["type"])),
			Description: asString(v["description"]),
			AreaServed:  asString(v["areaServed"]),
		}
	}
	return nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case fmt.Stringer:
		return strings.TrimSpace(s.String())
	}
	return ""
}

func parseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
