package asyncapi_test

import (
	"bytes"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/jsonpointer"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_References_Success(t *testing.T) {
	t.Parallel()

	doc, err := unmarshal(t, `asyncapi: 2.6.0
info: {title: t, version: "1"}
channels:
  a/b:
    parameters:
      id:
        $ref: '#/components/parameters/id'
    subscribe:
      message:
        oneOf:
          - $ref: '#/components/messages/one'
          - payload:
              type: object
              properties:
                nested:
                  $ref: 'common.yaml#/Nested'
components:
  schemas:
    list:
      items:
        - $ref: '#/components/schemas/item'
`)
	require.NoError(t, err)

	refs := doc.References(t.Context())

	assert.Equal(t, []asyncapi.ReferenceLocation{
		{Reference: "#/components/messages/one", Location: "/channels/a~1b/subscribe/message/oneOf/0"},
		{Reference: "common.yaml#/Nested", Location: "/channels/a~1b/subscribe/message/oneOf/1/payload/properties/nested"},
		{Reference: "#/components/parameters/id", Location: "/channels/a~1b/parameters/id"},
		{Reference: "#/components/schemas/item", Location: "/components/schemas/list/items/0"},
	}, refs)

	for _, ref := range refs {
		require.NoError(t, ref.Reference.Validate())
		require.NoError(t, ref.Location.Validate())
	}
	assert.False(t, refs[1].Reference.IsLocal())
	assert.Equal(t, jsonpointer.JSONPointer("/Nested"), refs[1].Reference.GetJSONPointer())
}

func TestWalk_VisitsModelsInDocumentOrder_Success(t *testing.T) {
	t.Parallel()

	doc, err := asyncapi.Unmarshal(t.Context(), bytes.NewReader(readFixture(t, "streetlights.yaml")))
	require.NoError(t, err)

	var first []jsonpointer.JSONPointer
	messages := map[jsonpointer.JSONPointer]*asyncapi.Message{}

	for item := range asyncapi.Walk(t.Context(), doc) {
		if len(first) < 3 {
			first = append(first, item.Location.ToJSONPointer())
		}
		if m, ok := item.Value.(*asyncapi.Message); ok {
			messages[item.Location.ToJSONPointer()] = m
		}
	}

	assert.Equal(t, []jsonpointer.JSONPointer{"/", "/info", "/info/contact"}, first)

	assert.Len(t, messages, 4)
	assert.Equal(t, "turnOnAvro", messages["/channels/smartylighting.streetlights.1.0.action.{streetlightId}.turn.on/publish/message/oneOf/1"].GetName())
	assert.Equal(t, "dimLight", messages["/components/messages/dimLight"].GetName())
}

func TestWalk_StopsEarly_Success(t *testing.T) {
	t.Parallel()

	doc, err := unmarshal(t, minimalDocument)
	require.NoError(t, err)

	count := 0
	for range asyncapi.Walk(t.Context(), doc) {
		count++
		break
	}
	assert.Equal(t, 1, count)

	var nilDoc *asyncapi.Document
	for range asyncapi.Walk(t.Context(), nilDoc) {
		t.Fatal("nil documents have nothing to walk")
	}
	assert.Empty(t, nilDoc.References(t.Context()))

	assert.Equal(t, references.Reference("#/components/messages/X"), doc.References(t.Context())[0].Reference)
}
