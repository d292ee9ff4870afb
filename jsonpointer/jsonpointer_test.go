package jsonpointer_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/jsonpointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONPointer_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pointer jsonpointer.JSONPointer
		wantErr bool
	}{
		{name: "root", pointer: "/"},
		{name: "simple path", pointer: "/channels/user~1signedup/subscribe"},
		{name: "escaped tilde", pointer: "/x~0y"},
		{name: "empty token", pointer: "/a//b"},
		{name: "empty", pointer: "", wantErr: true},
		{name: "missing leading slash", pointer: "components/schemas", wantErr: true},
		{name: "bad escape", pointer: "/a~2b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.pointer.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, jsonpointer.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestJSONPointer_Parts_Success(t *testing.T) {
	t.Parallel()

	parts, err := jsonpointer.JSONPointer("/channels/user~1signedup/x~0y").Parts()
	require.NoError(t, err)
	assert.Equal(t, []string{"channels", "user/signedup", "x~y"}, parts)

	parts, err = jsonpointer.Root.Parts()
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestPartsToJSONPointer_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jsonpointer.JSONPointer("/channels/user~1signedup/publish"), jsonpointer.PartsToJSONPointer([]string{"channels", "user/signedup", "publish"}))
	assert.Equal(t, jsonpointer.Root, jsonpointer.PartsToJSONPointer(nil))
	assert.Equal(t, jsonpointer.JSONPointer("/a/b~1c"), jsonpointer.Root.Append("a", "b/c"))
	assert.Equal(t, jsonpointer.JSONPointer("/a/0"), jsonpointer.JSONPointer("/a").Append("0"))
}

func TestGetNodeTarget_Success(t *testing.T) {
	t.Parallel()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(`
channels:
  user/signedup:
    subscribe:
      message:
        oneOf:
          - $ref: "#/components/messages/A"
          - $ref: "#/components/messages/B"
`), &doc))

	node, err := jsonpointer.GetNodeTarget(&doc, "/channels/user~1signedup/subscribe/message/oneOf/1/$ref")
	require.NoError(t, err)
	assert.Equal(t, "#/components/messages/B", node.Value)

	root, err := jsonpointer.GetNodeTarget(&doc, jsonpointer.Root)
	require.NoError(t, err)
	assert.Equal(t, yaml.MappingNode, root.Kind)
}

func TestGetNodeTarget_Error(t *testing.T) {
	t.Parallel()

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a:\n  - b\n"), &doc))

	_, err := jsonpointer.GetNodeTarget(&doc, "/missing")
	require.ErrorIs(t, err, jsonpointer.ErrNotFound)

	_, err = jsonpointer.GetNodeTarget(&doc, "/a/5")
	require.ErrorIs(t, err, jsonpointer.ErrNotFound)

	_, err = jsonpointer.GetNodeTarget(&doc, "/a/x")
	require.ErrorIs(t, err, jsonpointer.ErrInvalidPath)

	_, err = jsonpointer.GetNodeTarget(&doc, "/a/0/c")
	require.ErrorIs(t, err, jsonpointer.ErrInvalidPath)
}
