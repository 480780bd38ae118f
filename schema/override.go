package schema

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// sectionSchemaJSON constrains the shape of one base-schema section.
const sectionSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "@type": {
      "anyOf": [
        {"type": "string", "minLength": 1},
        {"type": "array", "items": {"type": "string"}, "minItems": 1}
      ]
    },
    "@context": {"type": ["string", "object"]}
  }
}`

const sectionSchemaURL = "structdata-section.json"

var sectionSchema = mustCompileSectionSchema()

func mustCompileSectionSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(sectionSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("unmarshal section schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(sectionSchemaURL, doc); err != nil {
		panic(fmt.Sprintf("add section schema: %v", err))
	}
	compiled, err := compiler.Compile(sectionSchemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile section schema: %v", err))
	}
	return compiled
}

// Section is one named section of a base-schema override.
type Section struct {
	Name  string
	Value any
}

// SkippedSection records a section dropped because of its shape.
type SkippedSection struct {
	Name string
	Err  error
}

// Override is a user-supplied base schema. Known sections are typed; any other
// section is kept in Extra in document order.
type Override struct {
	Organization Node
	WebSite      Node
	Article      Node
	Service      Node
	Extra        []Section

	// Skipped lists sections that were not mappings, carried a malformed
	// @type or @context, or were passthrough sections without @type. They take
	// no part in the merge.
	Skipped []SkippedSection
}

// NewOverride validates sections and sorts them into known and extra buckets.
// A later section with the same name replaces an earlier one.
func NewOverride(sections ...Section) *Override {
	o := &Override{}
	for _, s := range sections {
		node, err := validateSection(s)
		if err != nil {
			o.Skipped = append(o.Skipped, SkippedSection{Name: s.Name, Err: err})
			continue
		}
		switch schemaorg.Section(s.Name) {
		case schemaorg.SectionOrganization:
			o.Organization = node
		case schemaorg.SectionWebSite:
			o.WebSite = node
		case schemaorg.SectionArticle:
			o.Article = node
		case schemaorg.SectionService:
			o.Service = node
		default:
			if _, ok := node[schemaorg.KeyType]; !ok {
				o.Skipped = append(o.Skipped, SkippedSection{
					Name: s.Name,
					Err:  fmt.Errorf("%w %q: passthrough section has no @type", ErrInvalidSection, s.Name),
				})
				continue
			}
			o.setExtra(s.Name, node)
		}
	}
	return o
}

func (o *Override) setExtra(name string, node Node) {
	for i := range o.Extra {
		if o.Extra[i].Name == name {
			o.Extra[i].Value = node
			return
		}
	}
	o.Extra = append(o.Extra, Section{Name: name, Value: node})
}

// IsEmpty reports whether the override contributes nothing.
func (o *Override) IsEmpty() bool {
	return o == nil || (o.Organization == nil && o.WebSite == nil &&
		o.Article == nil && o.Service == nil && len(o.Extra) == 0)
}

// UnmarshalYAML decodes a mapping of sections, preserving document order.
// A base schema that is not a mapping is recorded as skipped rather than
// failing the decode.
func (o *Override) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		*o = Override{Skipped: []SkippedSection{{
			Name: "baseSchema",
			Err:  fmt.Errorf("%w: expected a mapping, got %s", ErrInvalidSection, kindName(value.Kind)),
		}}}
		return nil
	}
	sections := make([]Section, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v any
		if err := value.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("decode base schema section %q: %w", value.Content[i].Value, err)
		}
		sections = append(sections, Section{Name: value.Content[i].Value, Value: v})
	}
	*o = *NewOverride(sections...)
	return nil
}

// MarshalYAML encodes the override as a mapping: known sections first, then
// passthrough sections in their original order. Skipped sections are dropped.
func (o *Override) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}
	add := func(name string, v Node) error {
		if v == nil {
			return nil
		}
		var value yaml.Node
		if err := value.Encode(map[string]any(v)); err != nil {
			return fmt.Errorf("encode base schema section %q: %w", name, err)
		}
		out.Content = append(out.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, &value)
		return nil
	}

	known := map[schemaorg.Section]Node{
		schemaorg.SectionOrganization: o.Organization,
		schemaorg.SectionWebSite:      o.WebSite,
		schemaorg.SectionArticle:      o.Article,
		schemaorg.SectionService:      o.Service,
	}
	for _, s := range schemaorg.KnownSections {
		if err := add(string(s), known[s]); err != nil {
			return nil, err
		}
	}
	for _, s := range o.Extra {
		node, _ := asNode(s.Value)
		if err := add(s.Name, node); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// validateSection checks the section against the section schema and returns
// it as a Node.
func validateSection(s Section) (Node, error) {
	node, ok := asNode(s.Value)
	if !ok {
		return nil, fmt.Errorf("%w %q: expected a mapping, got %T", ErrInvalidSection, s.Name, s.Value)
	}

	data, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSection, s.Name, err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSection, s.Name, err)
	}
	if err := sectionSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSection, s.Name, err)
	}
	return node.Clone(), nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "mapping"
}
