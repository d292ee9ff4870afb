package asyncapi

import (
	"context"
	"reflect"
	"strings"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/marshaller"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// Message describes a message received on a given channel and operation.
type Message struct {
	MessageID     *string                     `key:"messageId" since:"2.4.0"`
	Headers       *ReferenceOr[Schema]        `key:"headers"`
	Payload       *Payload                    `key:"payload"`
	CorrelationID *ReferenceOr[CorrelationID] `key:"correlationId"`
	// SchemaFormat names the format of the payload schema. AsyncAPI schemas are assumed when absent.
	SchemaFormat *string                       `key:"schemaFormat"`
	ContentType  *string                       `key:"contentType"`
	Name         *string                       `key:"name"`
	Title        *string                       `key:"title"`
	Summary      *string                       `key:"summary"`
	Description  *string                       `key:"description"`
	Tags         []*Tag                        `key:"tags"`
	ExternalDocs *ExternalDocumentation        `key:"externalDocs"`
	Bindings     *ReferenceOr[MessageBindings] `key:"bindings"`
	Examples     []*MessageExample             `key:"examples"`
	Traits       []*ReferenceOr[MessageTrait]  `key:"traits"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

var _ marshaller.Unmarshallable = (*Message)(nil)

func (m *Message) ShapeName() string {
	return "message"
}

// UnmarshalNode decodes the message, making its schemaFormat available to the payload.
func (m *Message) UnmarshalNode(ctx context.Context, d *marshaller.Decoder, node *yaml.Node) {
	format := ""
	if _, formatNode, ok := yml.GetMapElementNodes(ctx, node, "schemaFormat"); ok {
		if formatNode = yml.ResolveAlias(formatNode); formatNode != nil && formatNode.Kind == yaml.ScalarNode {
			format = formatNode.Value
		}
	}

	d.DecodeFields(context.WithValue(ctx, schemaFormatKey, format), node, m)
}

// GetMessageID returns the value of the MessageID field. Returns empty string if not set.
func (m *Message) GetMessageID() string {
	if m == nil || m.MessageID == nil {
		return ""
	}
	return *m.MessageID
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (m *Message) GetName() string {
	if m == nil || m.Name == nil {
		return ""
	}
	return *m.Name
}

// GetContentType returns the value of the ContentType field. Returns empty string if not set.
func (m *Message) GetContentType() string {
	if m == nil || m.ContentType == nil {
		return ""
	}
	return *m.ContentType
}

// GetSchemaFormat returns the value of the SchemaFormat field. Returns empty string if not set.
func (m *Message) GetSchemaFormat() string {
	if m == nil || m.SchemaFormat == nil {
		return ""
	}
	return *m.SchemaFormat
}

// GetHeaders returns the value of the Headers field. Returns nil if not set.
func (m *Message) GetHeaders() *ReferenceOr[Schema] {
	if m == nil {
		return nil
	}
	return m.Headers
}

// GetPayload returns the value of the Payload field. Returns nil if not set.
func (m *Message) GetPayload() *Payload {
	if m == nil {
		return nil
	}
	return m.Payload
}

// GetCorrelationID returns the value of the CorrelationID field. Returns nil if not set.
func (m *Message) GetCorrelationID() *ReferenceOr[CorrelationID] {
	if m == nil {
		return nil
	}
	return m.CorrelationID
}

// GetExamples returns the value of the Examples field. Returns nil if not set.
func (m *Message) GetExamples() []*MessageExample {
	if m == nil {
		return nil
	}
	return m.Examples
}

// GetTraits returns the value of the Traits field. Returns nil if not set.
func (m *Message) GetTraits() []*ReferenceOr[MessageTrait] {
	if m == nil {
		return nil
	}
	return m.Traits
}

// MessageTrait holds the message fields that can be shared between messages.
type MessageTrait struct {
	MessageID     *string                       `key:"messageId" since:"2.4.0"`
	Headers       *ReferenceOr[Schema]          `key:"headers"`
	CorrelationID *ReferenceOr[CorrelationID]   `key:"correlationId"`
	SchemaFormat  *string                       `key:"schemaFormat"`
	ContentType   *string                       `key:"contentType"`
	Name          *string                       `key:"name"`
	Title         *string                       `key:"title"`
	Summary       *string                       `key:"summary"`
	Description   *string                       `key:"description"`
	Tags          []*Tag                        `key:"tags"`
	ExternalDocs  *ExternalDocumentation        `key:"externalDocs"`
	Bindings      *ReferenceOr[MessageBindings] `key:"bindings"`
	Examples      []*MessageExample             `key:"examples"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetContentType returns the value of the ContentType field. Returns empty string if not set.
func (t *MessageTrait) GetContentType() string {
	if t == nil || t.ContentType == nil {
		return ""
	}
	return *t.ContentType
}

// MessageExample is an example of a message's headers and payload.
type MessageExample struct {
	Headers *sequencedmap.Map[string, *yaml.Node] `key:"headers"`
	Payload *yaml.Node                            `key:"payload"`
	Name    *string                               `key:"name"`
	Summary *string                               `key:"summary"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (e *MessageExample) GetName() string {
	if e == nil || e.Name == nil {
		return ""
	}
	return *e.Name
}

// GetPayload returns the value of the Payload field. Returns nil if not set.
func (e *MessageExample) GetPayload() *yaml.Node {
	if e == nil {
		return nil
	}
	return e.Payload
}

// CorrelationID specifies an identifier at design time that can be used for message tracing and correlation.
type CorrelationID struct {
	Description *string `key:"description"`
	// Location is a runtime expression naming the location of the correlation ID.
	Location string `key:"location" required:"true"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetLocation returns the value of the Location field. Returns empty string if not set.
func (c *CorrelationID) GetLocation() string {
	if c == nil {
		return ""
	}
	return c.Location
}

type contextKey string

const schemaFormatKey contextKey = "schemaFormat"

// Payload is the definition of a message payload. Payloads described with an AsyncAPI or
// JSON schema are decoded into Schema, payloads in any other format (Avro, RAML, Protobuf...)
// or that are not schemas are kept untouched in Raw.
type Payload struct {
	Schema *ReferenceOr[Schema]
	Raw    *yaml.Node
}

var (
	_ marshaller.Unmarshallable = (*Payload)(nil)
	_ marshaller.Marshallable   = (*Payload)(nil)
)

// NewSchemaPayload creates a payload described by a schema.
func NewSchemaPayload(schema *ReferenceOr[Schema]) *Payload {
	return &Payload{Schema: schema}
}

// NewRawPayload creates a payload kept as an untyped value.
func NewRawPayload(node *yaml.Node) *Payload {
	return &Payload{Raw: node}
}

// IsSchema reports whether the payload was decoded as a schema.
func (p *Payload) IsSchema() bool {
	return p != nil && p.Schema != nil
}

// GetSchema returns the schema of the payload or nil.
func (p *Payload) GetSchema() *ReferenceOr[Schema] {
	if p == nil {
		return nil
	}
	return p.Schema
}

// GetRaw returns the untyped payload or nil.
func (p *Payload) GetRaw() *yaml.Node {
	if p == nil {
		return nil
	}
	return p.Raw
}

func (p *Payload) UnmarshalNode(ctx context.Context, d *marshaller.Decoder, node *yaml.Node) {
	p.Schema = nil
	p.Raw = nil

	format, _ := ctx.Value(schemaFormatKey).(string)
	if IsJSONSchemaFormat(format) && marshaller.Matches(reflect.TypeFor[ReferenceOr[Schema]](), node) {
		var schema ReferenceOr[Schema]
		d.Decode(ctx, node, &schema)
		p.Schema = &schema
		return
	}

	p.Raw = yml.Clone(node)
}

func (p *Payload) MarshalNode(ctx context.Context) *yaml.Node {
	switch {
	case p == nil:
		return nil
	case p.Schema != nil:
		return p.Schema.MarshalNode(ctx)
	default:
		return yml.Clone(p.Raw)
	}
}

var jsonSchemaFormats = []string{
	"application/vnd.aai.asyncapi",
	"application/schema+json",
	"application/schema+yaml",
}

// IsJSONSchemaFormat reports whether a message schemaFormat describes payloads with AsyncAPI or JSON schemas.
// An empty format means the AsyncAPI default.
func IsJSONSchemaFormat(format string) bool {
	if format == "" {
		return true
	}

	format = strings.ToLower(strings.TrimSpace(format))
	for _, prefix := range jsonSchemaFormats {
		if strings.HasPrefix(format, prefix) {
			return true
		}
	}
	return false
}
