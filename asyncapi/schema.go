package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/marshaller"
	"github.com/speakeasy-api/asyncapi/pointer"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/values"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// SchemaType is the `type` keyword: a single type name, or a list of names.
type SchemaType = values.EitherValue[string, []string]

// SchemaItems is the `items` keyword: one schema for every item, or one schema per position.
type SchemaItems = values.EitherValue[ReferenceOr[Schema], []*ReferenceOr[Schema]]

// SchemaDiscriminator is the `discriminator` keyword: a property name, or an OpenAPI style discriminator object.
type SchemaDiscriminator = values.EitherValue[string, Discriminator]

// Schema is an AsyncAPI schema: a superset of JSON Schema draft 07.
// A boolean schema (`true` or `false`) is held in Boolean with every other field unset.
type Schema struct {
	Boolean *bool

	ID                   *string                                         `key:"$id"`
	SchemaURI            *string                                         `key:"$schema"`
	Comment              *string                                         `key:"$comment"`
	Title                *string                                         `key:"title"`
	Description          *string                                         `key:"description"`
	Type                 *SchemaType                                     `key:"type"`
	Format               *string                                         `key:"format"`
	Default              *yaml.Node                                      `key:"default"`
	Enum                 []*yaml.Node                                    `key:"enum"`
	Const                *yaml.Node                                      `key:"const"`
	Examples             []*yaml.Node                                    `key:"examples"`
	MultipleOf           *float64                                        `key:"multipleOf"`
	Maximum              *float64                                        `key:"maximum"`
	ExclusiveMaximum     *float64                                        `key:"exclusiveMaximum"`
	Minimum              *float64                                        `key:"minimum"`
	ExclusiveMinimum     *float64                                        `key:"exclusiveMinimum"`
	MaxLength            *int64                                          `key:"maxLength"`
	MinLength            *int64                                          `key:"minLength"`
	Pattern              *string                                         `key:"pattern"`
	MaxItems             *int64                                          `key:"maxItems"`
	MinItems             *int64                                          `key:"minItems"`
	UniqueItems          *bool                                           `key:"uniqueItems"`
	MaxProperties        *int64                                          `key:"maxProperties"`
	MinProperties        *int64                                          `key:"minProperties"`
	Required             []string                                        `key:"required"`
	Properties           *sequencedmap.Map[string, *ReferenceOr[Schema]] `key:"properties"`
	PatternProperties    *sequencedmap.Map[string, *ReferenceOr[Schema]] `key:"patternProperties"`
	AdditionalProperties *ReferenceOr[Schema]                            `key:"additionalProperties"`
	Dependencies         *sequencedmap.Map[string, *yaml.Node]           `key:"dependencies"`
	PropertyNames        *ReferenceOr[Schema]                            `key:"propertyNames"`
	Items                *SchemaItems                                    `key:"items"`
	AdditionalItems      *ReferenceOr[Schema]                            `key:"additionalItems"`
	Contains             *ReferenceOr[Schema]                            `key:"contains"`
	If                   *ReferenceOr[Schema]                            `key:"if"`
	Then                 *ReferenceOr[Schema]                            `key:"then"`
	Else                 *ReferenceOr[Schema]                            `key:"else"`
	AllOf                []*ReferenceOr[Schema]                          `key:"allOf"`
	OneOf                []*ReferenceOr[Schema]                          `key:"oneOf"`
	AnyOf                []*ReferenceOr[Schema]                          `key:"anyOf"`
	Not                  *ReferenceOr[Schema]                            `key:"not"`
	Definitions          *sequencedmap.Map[string, *ReferenceOr[Schema]] `key:"definitions"`
	ContentEncoding      *string                                         `key:"contentEncoding"`
	ContentMediaType     *string                                         `key:"contentMediaType"`
	ReadOnly             *bool                                           `key:"readOnly"`
	WriteOnly            *bool                                           `key:"writeOnly"`
	Discriminator        *SchemaDiscriminator                            `key:"discriminator"`
	ExternalDocs         *ExternalDocumentation                          `key:"externalDocs"`
	Deprecated           *bool                                           `key:"deprecated"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

var (
	_ marshaller.Unmarshallable = (*Schema)(nil)
	_ marshaller.Marshallable   = (*Schema)(nil)
	_ marshaller.Matcher        = (*Schema)(nil)
)

// NewBooleanSchema creates a schema that accepts (true) or rejects (false) every value.
func NewBooleanSchema(value bool) *Schema {
	return &Schema{Boolean: pointer.From(value)}
}

// IsBoolean reports whether the schema is a boolean schema.
func (s *Schema) IsBoolean() bool {
	return s != nil && s.Boolean != nil
}

func (s *Schema) ShapeName() string {
	return "schema"
}

// MatchesNode reports whether node is a mapping or a boolean.
func (s *Schema) MatchesNode(node *yaml.Node) bool {
	node = yml.ResolveAlias(node)
	if node == nil {
		return false
	}
	return node.Kind == yaml.MappingNode || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool")
}

func (s *Schema) UnmarshalNode(ctx context.Context, d *marshaller.Decoder, node *yaml.Node) {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!bool" {
		var b bool
		d.Decode(ctx, node, &b)
		*s = Schema{Boolean: &b}
		return
	}

	d.DecodeFields(ctx, node, s)
}

func (s *Schema) MarshalNode(ctx context.Context) *yaml.Node {
	if s == nil {
		return nil
	}
	if s.Boolean != nil {
		return yml.CreateBoolNode(*s.Boolean)
	}
	return marshaller.EncodeFields(ctx, s)
}

// GetType returns the type names of the schema. Returns nil if not set.
func (s *Schema) GetType() []string {
	if s == nil || s.Type == nil {
		return nil
	}
	if s.Type.IsLeft() {
		return []string{*s.Type.Left}
	}
	return *s.Type.Right
}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (s *Schema) GetTitle() string {
	if s == nil || s.Title == nil {
		return ""
	}
	return *s.Title
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *Schema) GetDescription() string {
	if s == nil || s.Description == nil {
		return ""
	}
	return *s.Description
}

// GetFormat returns the value of the Format field. Returns empty string if not set.
func (s *Schema) GetFormat() string {
	if s == nil || s.Format == nil {
		return ""
	}
	return *s.Format
}

// GetProperties returns the value of the Properties field. Returns nil if not set.
func (s *Schema) GetProperties() *sequencedmap.Map[string, *ReferenceOr[Schema]] {
	if s == nil {
		return nil
	}
	return s.Properties
}

// GetRequired returns the value of the Required field. Returns nil if not set.
func (s *Schema) GetRequired() []string {
	if s == nil {
		return nil
	}
	return s.Required
}

// GetItems returns the value of the Items field. Returns nil if not set.
func (s *Schema) GetItems() *SchemaItems {
	if s == nil {
		return nil
	}
	return s.Items
}

// GetAllOf returns the value of the AllOf field. Returns nil if not set.
func (s *Schema) GetAllOf() []*ReferenceOr[Schema] {
	if s == nil {
		return nil
	}
	return s.AllOf
}

// GetOneOf returns the value of the OneOf field. Returns nil if not set.
func (s *Schema) GetOneOf() []*ReferenceOr[Schema] {
	if s == nil {
		return nil
	}
	return s.OneOf
}

// GetAnyOf returns the value of the AnyOf field. Returns nil if not set.
func (s *Schema) GetAnyOf() []*ReferenceOr[Schema] {
	if s == nil {
		return nil
	}
	return s.AnyOf
}

// Discriminator is the object form of the `discriminator` keyword.
type Discriminator struct {
	PropertyName string                            `key:"propertyName" required:"true"`
	Mapping      *sequencedmap.Map[string, string] `key:"mapping"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}
