package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON_KeyOrder(t *testing.T) {
	node, err := Parse([]byte(`
zebra: 1
apple: two
nested:
  y: true
  x: null
list:
  - 1.5
  - text
`))
	require.NoError(t, err)

	data, err := node.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":1,"apple":"two","nested":{"y":true,"x":null},"list":[1.5,"text"]}`, string(data),
		"document order, not alphabetical")
}

func TestMarshalJSON_ScalarFallbacks(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"plain string", NewString("hi"), `"hi"`},
		{"string needing escape", NewString(`say "hi"`), `"say \"hi\""`},
		{"int", NewScalar("!!int", "42"), "42"},
		{"hex int falls back to string", NewScalar("!!int", "0x1A"), `"0x1A"`},
		{"float", NewScalar("!!float", "3.5"), "3.5"},
		{"infinity falls back to string", NewScalar("!!float", ".inf"), `".inf"`},
		{"bool", NewScalar("!!bool", "true"), "true"},
		{"null", NewScalar("!!null", "null"), "null"},
		{"zero node is null", &Node{}, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.node.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestMarshalJSON_ValidJSON(t *testing.T) {
	node, err := Parse([]byte(`
description: |
  multi
  line
count: 7
`))
	require.NoError(t, err)

	data, err := node.MarshalJSON()
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestMarshalJSONIndent(t *testing.T) {
	node := NewMapping()
	node.Set("a", NewScalar("!!int", "1"))

	data, err := node.MarshalJSONIndent("", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestMarshalJSON_ViaEncodingJSON(t *testing.T) {
	// json.Marshal must route through the custom marshaler.
	node := NewMapping()
	node.Set("z", NewString("1"))
	node.Set("a", NewString("2"))

	data, err := json.Marshal(node)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"1","a":"2"}`, string(data))
}
