package asyncapi_test

import (
	"bytes"
	"testing"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_ValidateExamples_Success(t *testing.T) {
	t.Parallel()

	doc, err := asyncapi.Unmarshal(t.Context(), bytes.NewReader(readFixture(t, "streetlights.yaml")))
	require.NoError(t, err)

	assert.Empty(t, doc.ValidateExamples(t.Context()))
}

func TestDocument_ValidateExamples_Error(t *testing.T) {
	t.Parallel()

	doc, err := unmarshal(t, `asyncapi: 2.6.0
info: {title: t, version: "1"}
channels:
  foo:
    publish:
      message:
        $ref: '#/components/messages/measured'
components:
  schemas:
    measurement:
      type: object
      properties:
        lumens:
          type: integer
          minimum: 0
      required: [lumens]
  messages:
    measured:
      payload:
        $ref: '#/components/schemas/measurement'
      examples:
        - name: valid
          payload: {lumens: 10}
        - name: negative
          payload: {lumens: -1}
        - name: headers only
          headers: {a: b}
    avro:
      schemaFormat: application/vnd.apache.avro;version=1.9.0
      payload: {type: record}
      examples:
        - payload: {anything: goes}
`)
	require.NoError(t, err)

	errs := doc.ValidateExamples(t.Context())
	require.Len(t, errs, 1)

	var vErr *validation.Error
	require.True(t, errors.As(errs[0], &vErr))
	assert.Equal(t, "/components/messages/measured/examples/1/payload/lumens", vErr.Path.String())
	assert.Equal(t, validation.RuleValidationInvalidExample, vErr.Rule)
	assert.Equal(t, -1, vErr.Line)

	var exampleErr *validation.ExampleError
	require.ErrorAs(t, errs[0], &exampleErr)
	assert.NotEmpty(t, exampleErr.Message)
}

func TestDocument_ValidateExamples_InlineMessage_Error(t *testing.T) {
	t.Parallel()

	doc, err := unmarshal(t, `asyncapi: 2.6.0
info: {title: t, version: "1"}
channels:
  user/signedup:
    subscribe:
      message:
        payload:
          type: object
          required: [email]
        examples:
          - payload: {name: x}
`)
	require.NoError(t, err)

	errs := doc.ValidateExamples(t.Context())
	require.Len(t, errs, 1)

	var vErr *validation.Error
	require.True(t, errors.As(errs[0], &vErr))
	assert.Equal(t, "/channels/user~1signedup/subscribe/message/examples/0/payload", vErr.Path.String())
}

func TestDocument_ValidateExamples_NilDocument_Success(t *testing.T) {
	t.Parallel()

	var doc *asyncapi.Document
	assert.Nil(t, doc.ValidateExamples(t.Context()))
}
