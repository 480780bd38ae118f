package export

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/c360studio/structdata/content"
	"github.com/c360studio/structdata/schema"
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// Emitter serializes an aggregated result into one output file.
type Emitter struct {
	format    Format
	component *template.Template
}

// NewEmitter creates an emitter for format.
func NewEmitter(format Format) (*Emitter, error) {
	if _, ok := GetFormatInfo(format); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &Emitter{
		format:    format,
		component: template.Must(template.New("component").Parse(componentTemplate)),
	}, nil
}

// Format returns the emitter's output format.
func (e *Emitter) Format() Format {
	return e.format
}

// Emit renders result. The same result and site always yield the same bytes.
func (e *Emitter) Emit(result schema.Result, site content.Site) ([]byte, error) {
	switch e.format {
	case FormatJSONLD:
		return e.emitJSONLD(result)
	case FormatComponent:
		return e.emitComponent(result, site)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, e.format)
	}
}

// Emit renders result as the page-wrapper component.
func Emit(result schema.Result, site content.Site) ([]byte, error) {
	return Export(result, site, FormatComponent)
}

// Export renders result in the given format.
func Export(result schema.Result, site content.Site, format Format) ([]byte, error) {
	e, err := NewEmitter(format)
	if err != nil {
		return nil, err
	}
	return e.Emit(result, site)
}

func (e *Emitter) emitJSONLD(result schema.Result) ([]byte, error) {
	data, err := marshalScriptSafe(nodesOrEmpty(result.Nodes()), "")
	if err != nil {
		return nil, fmt.Errorf("encode json-ld: %w", err)
	}
	return append(data, '\n'), nil
}

type componentData struct {
	Digest        string
	BaseURL       string
	Locales       string
	DefaultLocale string
	SchemaTypes   string
	SiteSchema    string
	Articles      string
	Services      string
}

func (e *Emitter) emitComponent(result schema.Result, site content.Site) ([]byte, error) {
	dgst, err := contentDigest(nodesOrEmpty(result.Nodes()))
	if err != nil {
		return nil, err
	}

	locales := site.Locales()
	if locales == nil {
		locales = []string{}
	}

	var encodeErr error
	encode := func(v any) string {
		if encodeErr != nil {
			return ""
		}
		out, err := marshalScriptSafe(v, "")
		if err != nil {
			encodeErr = err
		}
		return string(out)
	}
	data := componentData{
		Digest:        dgst.String(),
		BaseURL:       encode(baseURL(site)),
		Locales:       encode(locales),
		DefaultLocale: encode(site.DefaultLocale()),
		SchemaTypes:   encode(schemaTypeTable()),
		SiteSchema:    encode(nodesOrEmpty(result.SiteNodes())),
		Articles:      encode(byRoute(result.RouteNodes(schema.RoleArticle))),
		Services:      encode(byRoute(result.RouteNodes(schema.RoleService))),
	}
	if encodeErr != nil {
		return nil, fmt.Errorf("encode component data: %w", encodeErr)
	}

	var buf bytes.Buffer
	if err := e.component.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render component: %w", err)
	}
	return buf.Bytes(), nil
}

// byRoute indexes route-bound nodes by their normalized route. The first node
// for a route wins.
func byRoute(entries []schema.Entry) map[string]schema.Node {
	out := make(map[string]schema.Node, len(entries))
	for _, e := range entries {
		key := RouteKey(e.Route)
		if _, ok := out[key]; !ok {
			out[key] = e.Node
		}
	}
	return out
}

// RouteKey normalizes a route the way the component normalizes the browser
// location: a leading slash and no trailing slash, except for the root.
func RouteKey(route string) string {
	route = strings.TrimRight(route, "/")
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return route
}

func baseURL(site content.Site) string {
	base := strings.Trim(site.BaseURL, "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

func schemaTypeTable() map[string][]string {
	table := make(map[string][]string, len(schemaorg.EmittedTypes))
	for _, role := range schemaorg.EmittedTypes {
		types := make([]string, len(role.Types))
		for i, t := range role.Types {
			types[i] = string(t)
		}
		table[role.Role] = types
	}
	return table
}

func nodesOrEmpty(nodes []schema.Node) []schema.Node {
	if nodes == nil {
		return []schema.Node{}
	}
	return nodes
}
