package schema

import "strings"

// Merge returns a deep copy of base with override applied on top.
//
// Override scalars and arrays replace the base value. Override mappings merge
// key by key into base mappings, recursively; a mapping over a non-mapping
// replaces it. A null or empty-string override value removes the key.
func Merge(base, override Node) Node {
	out := base.Clone()
	if out == nil {
		out = Node{}
	}
	mergeInto(out, override)
	return out
}

func mergeInto(dst, src Node) {
	for k, v := range src {
		if isRemoval(v) {
			delete(dst, k)
			continue
		}
		srcNode, srcIsNode := asNode(v)
		dstNode, dstIsNode := asNode(dst[k])
		if srcIsNode && dstIsNode {
			merged := Node(dstNode)
			mergeInto(merged, srcNode)
			dst[k] = merged
			continue
		}
		dst[k] = cloneValue(v)
	}
}

func isRemoval(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}
