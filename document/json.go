package document

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarshalJSON implements json.Marshaler, emitting mapping keys in document
// order rather than the alphabetical order encoding/json would impose on a
// plain map.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSONIndent returns the node as indented JSON with document key order.
func (n *Node) MarshalJSONIndent(prefix, indent string) ([]byte, error) {
	data, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	switch n.kind {
	case KindMapping:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyJSON, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')
			if err := n.children[key].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case KindSequence:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		return n.writeScalarJSON(buf)
	}
}

// writeScalarJSON renders a scalar according to its YAML tag. Values that do
// not fit JSON's literal grammar (e.g. hex integers, .inf) fall back to a
// quoted string rather than producing invalid output.
func (n *Node) writeScalarJSON(buf *bytes.Buffer) error {
	switch n.tag {
	case "!!null", "":
		buf.WriteString("null")
		return nil
	case "!!bool":
		if n.value == "true" || n.value == "false" {
			buf.WriteString(n.value)
			return nil
		}
	case "!!int":
		if _, err := strconv.ParseInt(n.value, 10, 64); err == nil {
			buf.WriteString(n.value)
			return nil
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.value, 64); err == nil {
			if data, err := json.Marshal(f); err == nil {
				buf.Write(data)
				return nil
			}
		}
	}
	data, err := json.Marshal(n.value)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
