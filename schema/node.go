package schema

import (
	"github.com/c360studio/structdata/vocabulary/schemaorg"
)

// Node is one JSON-LD object.
type Node map[string]any

// NewNode returns a node of type t. Top-level nodes also get @context.
func NewNode(t schemaorg.Type, topLevel bool) Node {
	n := Node{schemaorg.KeyType: string(t)}
	if topLevel {
		n[schemaorg.KeyContext] = schemaorg.Context
	}
	return n
}

// Type returns the @type of the node, or "" when it is absent or not a string.
func (n Node) Type() schemaorg.Type {
	t, _ := n[schemaorg.KeyType].(string)
	return schemaorg.Type(t)
}

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	if n == nil {
		return nil
	}
	return cloneValue(n).(Node)
}

// Nested returns a deep copy of the node without @context, for embedding.
func (n Node) Nested() Node {
	c := n.Clone()
	if c != nil {
		delete(c, schemaorg.KeyContext)
	}
	return c
}

// hasData reports whether the node has any key besides @type and @context.
func (n Node) hasData() bool {
	for k := range n {
		if k != schemaorg.KeyType && k != schemaorg.KeyContext {
			return true
		}
	}
	return false
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Node:
		out := make(Node, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(Node, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case []Node:
		out := make([]Node, len(t))
		for i, e := range t {
			out[i] = cloneValue(e).(Node)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// asNode returns v as a Node when it is a mapping.
func asNode(v any) (Node, bool) {
	switch t := v.(type) {
	case Node:
		return t, true
	case map[string]any:
		return Node(t), true
	}
	return nil, false
}
