package query_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func loadStreetlights(t *testing.T) *asyncapi.Document {
	t.Helper()

	data, err := os.ReadFile("../asyncapi/testdata/streetlights.yaml")
	require.NoError(t, err)

	doc, err := asyncapi.Unmarshal(t.Context(), bytes.NewReader(data))
	require.NoError(t, err)

	return doc
}

func TestQuery_Find_Success(t *testing.T) {
	t.Parallel()

	doc := loadStreetlights(t)

	tests := []struct {
		name       string
		expression string
		dialect    query.Dialect
		expected   []string
	}{
		{
			name:       "server protocols",
			expression: "$.servers.*.protocol",
			dialect:    query.DialectRFC9535,
			expected:   []string{"kafka-secure", "kafka-secure", "mqtt"},
		},
		{
			name:       "operation ids across channels",
			expression: "$.channels.*.*.operationId",
			dialect:    query.DialectRFC9535,
			expected:   []string{"receiveLightMeasurement", "turnOn", "dimLight"},
		},
		{
			name:       "extension on info",
			expression: "$.info['x-audience']",
			dialect:    query.DialectRFC9535,
			expected:   []string{"internal"},
		},
		{
			name:       "legacy server protocols",
			expression: "$.servers.*.protocol",
			dialect:    query.DialectLegacy,
			expected:   []string{"kafka-secure", "kafka-secure", "mqtt"},
		},
		{
			name:       "legacy info title",
			expression: "$.info.title",
			dialect:    query.DialectLegacy,
			expected:   []string{"Streetlights Kafka API"},
		},
		{
			name:       "no match",
			expression: "$.info.missing",
			dialect:    query.DialectRFC9535,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := query.New(tt.expression, query.WithDialect(tt.dialect))
			require.NoError(t, err)
			assert.Equal(t, tt.expression, q.String())
			assert.Equal(t, tt.dialect, q.Dialect())

			assert.Equal(t, tt.expected, query.Values(q.Find(t.Context(), doc)))
		})
	}
}

func TestQuery_FindNode_Success(t *testing.T) {
	t.Parallel()

	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a:\n  b: [1, 2]\n"), &root))

	q, err := query.New("$.a.b")
	require.NoError(t, err)
	assert.Equal(t, query.DialectRFC9535, q.Dialect())

	fromDocument := q.FindNode(&root)
	require.Len(t, fromDocument, 1)
	assert.Equal(t, yaml.SequenceNode, fromDocument[0].Kind)
	assert.Empty(t, query.Values(fromDocument), "sequences are not scalars")

	fromMapping := q.FindNode(root.Content[0])
	require.Len(t, fromMapping, 1)
	assert.Same(t, fromDocument[0], fromMapping[0])

	assert.Nil(t, q.FindNode(nil))
	assert.Nil(t, q.Find(t.Context(), nil))
}

func TestQuery_New_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		opts       []query.Option
	}{
		{
			name:       "unterminated bracket",
			expression: "$.servers[",
		},
		{
			name:       "legacy unterminated bracket",
			expression: "$.servers[",
			opts:       []query.Option{query.WithDialect(query.DialectLegacy)},
		},
		{
			name:       "unknown dialect",
			expression: "$.info",
			opts:       []query.Option{query.WithDialect("xpath")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := query.New(tt.expression, tt.opts...)
			require.Error(t, err)
			require.ErrorIs(t, err, query.ErrInvalidExpression)
			assert.Nil(t, q)
		})
	}
}

func TestQuery_Find_ResultsAreDetached_Success(t *testing.T) {
	t.Parallel()

	doc := loadStreetlights(t)
	want := loadStreetlights(t)

	for _, expression := range []string{
		"$.info['x-audience']",
		"$.components.schemas.dimLightPayload.additionalProperties",
		"$.channels.*.publish.message.oneOf[1].payload",
	} {
		q, err := query.New(expression)
		require.NoError(t, err)

		found := q.Find(t.Context(), doc)
		require.NotEmpty(t, found, expression)
		for _, n := range found {
			n.Value = "mutated"
			n.Content = nil
		}
	}

	assert.Equal(t, want, doc)
}
