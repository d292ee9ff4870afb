package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/values"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// OperationMessage is either a `oneOf` list of messages or a single message.
// The `oneOf` wrapper is tried first.
type OperationMessage = values.EitherValue[MessageOneOf, ReferenceOr[Message]]

// NewOperationMessage wraps a single message.
func NewOperationMessage(message *ReferenceOr[Message]) *OperationMessage {
	return &OperationMessage{Right: message}
}

// NewOperationMessageOneOf wraps a list of alternative messages.
func NewOperationMessageOneOf(messages ...*ReferenceOr[Message]) *OperationMessage {
	return &OperationMessage{Left: &MessageOneOf{OneOf: messages}}
}

// Operation describes a publish or a subscribe operation.
type Operation struct {
	OperationID  *string                         `key:"operationId"`
	Summary      *string                         `key:"summary"`
	Description  *string                         `key:"description"`
	Security     []*SecurityRequirement          `key:"security" since:"2.4.0"`
	Tags         []*Tag                          `key:"tags"`
	ExternalDocs *ExternalDocumentation          `key:"externalDocs"`
	Bindings     *ReferenceOr[OperationBindings] `key:"bindings"`
	// Traits are applied to the operation by the caller; they are kept as written.
	Traits  []*ReferenceOr[OperationTrait] `key:"traits"`
	Message *OperationMessage              `key:"message"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetOperationID returns the value of the OperationID field. Returns empty string if not set.
func (o *Operation) GetOperationID() string {
	if o == nil || o.OperationID == nil {
		return ""
	}
	return *o.OperationID
}

// GetSummary returns the value of the Summary field. Returns empty string if not set.
func (o *Operation) GetSummary() string {
	if o == nil || o.Summary == nil {
		return ""
	}
	return *o.Summary
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (o *Operation) GetDescription() string {
	if o == nil || o.Description == nil {
		return ""
	}
	return *o.Description
}

// GetSecurity returns the value of the Security field. Returns nil if not set.
func (o *Operation) GetSecurity() []*SecurityRequirement {
	if o == nil {
		return nil
	}
	return o.Security
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (o *Operation) GetTags() []*Tag {
	if o == nil {
		return nil
	}
	return o.Tags
}

// GetTraits returns the value of the Traits field. Returns nil if not set.
func (o *Operation) GetTraits() []*ReferenceOr[OperationTrait] {
	if o == nil {
		return nil
	}
	return o.Traits
}

// GetMessage returns the value of the Message field. Returns nil if not set.
func (o *Operation) GetMessage() *OperationMessage {
	if o == nil {
		return nil
	}
	return o.Message
}

// GetMessages returns every message of the operation, whether declared alone or in a `oneOf` list.
func (o *Operation) GetMessages() []*ReferenceOr[Message] {
	m := o.GetMessage()
	switch {
	case m.IsLeft():
		return m.GetLeft().OneOf
	case m.IsRight():
		return []*ReferenceOr[Message]{m.GetRight()}
	default:
		return nil
	}
}

// MessageOneOf lists the alternative messages of an operation.
type MessageOneOf struct {
	OneOf []*ReferenceOr[Message] `key:"oneOf" required:"true"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

func (m *MessageOneOf) ShapeName() string {
	return "oneOf"
}

// MatchesNode reports whether node is a mapping containing `oneOf`.
// Mappings with a string `$ref` are left to the single message candidate, which rejects sibling keys.
func (m *MessageOneOf) MatchesNode(node *yaml.Node) bool {
	if _, ok := stringRef(node); ok {
		return false
	}
	_, _, found := yml.GetMapElementNodes(context.Background(), node, "oneOf")
	return found
}

// OperationTrait holds the operation fields that can be shared between operations.
type OperationTrait struct {
	OperationID  *string                         `key:"operationId"`
	Summary      *string                         `key:"summary"`
	Description  *string                         `key:"description"`
	Security     []*SecurityRequirement          `key:"security" since:"2.4.0"`
	Tags         []*Tag                          `key:"tags"`
	ExternalDocs *ExternalDocumentation          `key:"externalDocs"`
	Bindings     *ReferenceOr[OperationBindings] `key:"bindings"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetOperationID returns the value of the OperationID field. Returns empty string if not set.
func (t *OperationTrait) GetOperationID() string {
	if t == nil || t.OperationID == nil {
		return ""
	}
	return *t.OperationID
}
