package document

import (
	"go.yaml.in/yaml/v4"
)

// Kind identifies which of the three node shapes a Node holds.
type Kind int

const (
	// KindScalar is a leaf value: string, number, bool, or null.
	KindScalar Kind = iota
	// KindMapping is an ordered set of unique string keys mapped to child nodes.
	KindMapping
	// KindSequence is an ordered list of child nodes.
	KindSequence
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Node is one node of a document tree. The zero value is a null scalar.
//
// Mutating methods (Set, Delete, Append) apply only to the kinds they belong
// to and are no-ops on other kinds; accessors likewise report "not found" on
// the wrong kind rather than panic. This keeps traversal code free of kind
// pre-checks, matching how untyped OAS subtrees are actually walked.
type Node struct {
	kind Kind

	// scalar fields mirror yaml.Node so tags and styles survive round trips
	tag   string
	style yaml.Style
	value string

	// mapping entries, insertion-ordered with unique keys
	keys     []string
	children map[string]*Node

	// sequence elements
	items []*Node
}

// NewMapping returns an empty mapping node.
func NewMapping() *Node {
	return &Node{kind: KindMapping, children: make(map[string]*Node)}
}

// NewSequence returns a sequence node holding the given items.
func NewSequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: items}
}

// NewString returns a plain string scalar node.
func NewString(s string) *Node {
	return &Node{kind: KindScalar, tag: "!!str", value: s}
}

// NewScalar returns a scalar node with an explicit YAML tag,
// e.g. "!!int", "!!bool", "!!null".
func NewScalar(tag, value string) *Node {
	return &Node{kind: KindScalar, tag: tag, value: value}
}

// Kind reports the node's shape.
func (n *Node) Kind() Kind {
	return n.kind
}

// Len returns the number of mapping entries or sequence elements, and 0 for
// scalars.
func (n *Node) Len() int {
	switch n.kind {
	case KindMapping:
		return len(n.keys)
	case KindSequence:
		return len(n.items)
	default:
		return 0
	}
}

// Keys returns the mapping's keys in insertion order. The returned slice is a
// copy. Non-mapping nodes return nil.
func (n *Node) Keys() []string {
	if n.kind != KindMapping || len(n.keys) == 0 {
		return nil
	}
	keys := make([]string, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// Get returns the child for key. The second result is false if the key is
// absent or the node is not a mapping.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindMapping {
		return nil, false
	}
	child, ok := n.children[key]
	return child, ok
}

// Has reports whether the mapping contains key.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Set adds or replaces the child for key. A new key is appended after the
// existing keys; replacing an existing key keeps its position.
func (n *Node) Set(key string, child *Node) {
	if n.kind != KindMapping {
		return
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if _, ok := n.children[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}

// Delete removes the entry for key and reports whether it was present.
func (n *Node) Delete(key string) bool {
	if n.kind != KindMapping {
		return false
	}
	if _, ok := n.children[key]; !ok {
		return false
	}
	delete(n.children, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Items returns the sequence's elements in order. The returned slice is a
// copy; the elements themselves are shared. Non-sequence nodes return nil.
func (n *Node) Items() []*Node {
	if n.kind != KindSequence || len(n.items) == 0 {
		return nil
	}
	items := make([]*Node, len(n.items))
	copy(items, n.items)
	return items
}

// Append adds an element to the end of a sequence.
func (n *Node) Append(item *Node) {
	if n.kind != KindSequence {
		return
	}
	n.items = append(n.items, item)
}

// Value returns the raw scalar text, e.g. "42" for an integer scalar.
// Non-scalar nodes return "".
func (n *Node) Value() string {
	if n.kind != KindScalar {
		return ""
	}
	return n.value
}

// Tag returns the scalar's resolved YAML tag, e.g. "!!str" or "!!int".
func (n *Node) Tag() string {
	if n.kind != KindScalar {
		return ""
	}
	return n.tag
}

// StringValue returns the scalar's text and true when the node is a string
// scalar. Any other node, including numeric and bool scalars, returns
// ("", false).
func (n *Node) StringValue() (string, bool) {
	if n.kind != KindScalar || n.tag != "!!str" {
		return "", false
	}
	return n.value, true
}

// Clone returns a deep copy of the node. Mutations of the copy never affect
// the original, which is what lets the projector hand out by-value subtrees
// of a caller-owned document.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		kind:  n.kind,
		tag:   n.tag,
		style: n.style,
		value: n.value,
	}
	switch n.kind {
	case KindMapping:
		out.children = make(map[string]*Node, len(n.keys))
		out.keys = make([]string, len(n.keys))
		copy(out.keys, n.keys)
		for key, child := range n.children {
			out.children[key] = child.Clone()
		}
	case KindSequence:
		out.items = make([]*Node, len(n.items))
		for i, item := range n.items {
			out.items[i] = item.Clone()
		}
	}
	return out
}
