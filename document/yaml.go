package document

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasubset/oaserrors"
)

// outputFileMode uses restrictive permissions since API specs may describe
// internal services.
const outputFileMode = 0o600

// Load reads and parses a YAML or JSON document from a file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}
	node, err := Parse(data)
	if err != nil {
		var perr *oaserrors.ParseError
		if errors.As(err, &perr) && perr.Path == "" {
			perr.Path = path
		}
		return nil, err
	}
	return node, nil
}

// Parse parses a YAML or JSON document into a Node tree. Mapping key order
// and scalar styles are preserved; anchors and aliases are dereferenced.
func Parse(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{
			Message: "invalid YAML/JSON",
			Cause:   err,
		}
	}
	if root.Kind == 0 {
		return nil, &oaserrors.ParseError{Message: "empty document"}
	}
	c := &converter{busy: make(map[*yaml.Node]bool)}
	return c.fromYAML(&root)
}

// Write marshals a node to YAML and writes it to a file.
func Write(node *Node, path string) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("document: failed to marshal: %w", err)
	}
	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("document: failed to write %s: %w", path, err)
	}
	return nil
}

// converter tracks in-progress alias expansion so self-referential anchors
// (&a [*a]) fail instead of recursing forever.
type converter struct {
	busy map[*yaml.Node]bool
}

func (c *converter) fromYAML(y *yaml.Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return nil, &oaserrors.ParseError{Message: "empty document"}
		}
		return c.fromYAML(y.Content[0])

	case yaml.AliasNode:
		if y.Alias == nil {
			return nil, &oaserrors.ParseError{
				Line:    y.Line,
				Column:  y.Column,
				Message: fmt.Sprintf("unresolved alias *%s", y.Value),
			}
		}
		if c.busy[y.Alias] {
			return nil, &oaserrors.ParseError{
				Line:    y.Line,
				Column:  y.Column,
				Message: fmt.Sprintf("cyclic alias *%s", y.Value),
			}
		}
		return c.fromYAML(y.Alias)

	case yaml.ScalarNode:
		return &Node{kind: KindScalar, tag: y.Tag, style: y.Style, value: y.Value}, nil

	case yaml.SequenceNode:
		c.busy[y] = true
		defer delete(c.busy, y)
		node := &Node{kind: KindSequence, items: make([]*Node, 0, len(y.Content))}
		for _, item := range y.Content {
			child, err := c.fromYAML(item)
			if err != nil {
				return nil, err
			}
			node.items = append(node.items, child)
		}
		return node, nil

	case yaml.MappingNode:
		c.busy[y] = true
		defer delete(c.busy, y)
		node := NewMapping()
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := y.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, &oaserrors.ParseError{
					Line:    key.Line,
					Column:  key.Column,
					Message: "mapping key is not a scalar",
				}
			}
			child, err := c.fromYAML(y.Content[i+1])
			if err != nil {
				return nil, err
			}
			node.Set(key.Value, child)
		}
		return node, nil

	default:
		return nil, &oaserrors.ParseError{
			Line:    y.Line,
			Column:  y.Column,
			Message: fmt.Sprintf("unsupported YAML node kind %d", y.Kind),
		}
	}
}

// toYAML converts the node back to a yaml.Node, restoring scalar tags and
// styles captured at parse time.
func (n *Node) toYAML() *yaml.Node {
	switch n.kind {
	case KindScalar:
		tag := n.tag
		if tag == "" {
			tag = "!!null"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Style: n.style, Value: n.value}

	case KindSequence:
		y := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		y.Content = make([]*yaml.Node, 0, len(n.items))
		for _, item := range n.items {
			y.Content = append(y.Content, item.toYAML())
		}
		return y

	case KindMapping:
		y := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		y.Content = make([]*yaml.Node, 0, 2*len(n.keys))
		for _, key := range n.keys {
			y.Content = append(y.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				n.children[key].toYAML())
		}
		return y

	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// MarshalYAML implements yaml.Marshaler, emitting the node with its original
// key order and scalar styles.
func (n *Node) MarshalYAML() (any, error) {
	return n.toYAML(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	c := &converter{busy: make(map[*yaml.Node]bool)}
	parsed, err := c.fromYAML(value)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}
