package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// Components holds reusable objects for different aspects of the AsyncAPI document.
// Objects defined here have no effect on the API unless they are referenced from outside Components.
type Components struct {
	Schemas           *sequencedmap.Map[string, *ReferenceOr[Schema]]            `key:"schemas"`
	Servers           *sequencedmap.Map[string, *ReferenceOr[Server]]            `key:"servers" since:"2.3.0"`
	ServerVariables   *sequencedmap.Map[string, *ReferenceOr[ServerVariable]]    `key:"serverVariables" since:"2.3.0"`
	Channels          *sequencedmap.Map[string, *Channel]                        `key:"channels" since:"2.3.0"`
	Messages          *sequencedmap.Map[string, *ReferenceOr[Message]]           `key:"messages"`
	SecuritySchemes   *sequencedmap.Map[string, *ReferenceOr[SecurityScheme]]    `key:"securitySchemes"`
	Parameters        *sequencedmap.Map[string, *ReferenceOr[Parameter]]         `key:"parameters"`
	CorrelationIDs    *sequencedmap.Map[string, *ReferenceOr[CorrelationID]]     `key:"correlationIds"`
	OperationTraits   *sequencedmap.Map[string, *ReferenceOr[OperationTrait]]    `key:"operationTraits"`
	MessageTraits     *sequencedmap.Map[string, *ReferenceOr[MessageTrait]]      `key:"messageTraits"`
	ServerBindings    *sequencedmap.Map[string, *ReferenceOr[ServerBindings]]    `key:"serverBindings"`
	ChannelBindings   *sequencedmap.Map[string, *ReferenceOr[ChannelBindings]]   `key:"channelBindings"`
	OperationBindings *sequencedmap.Map[string, *ReferenceOr[OperationBindings]] `key:"operationBindings"`
	MessageBindings   *sequencedmap.Map[string, *ReferenceOr[MessageBindings]]   `key:"messageBindings"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetSchemas returns the value of the Schemas field. Returns nil if not set.
func (c *Components) GetSchemas() *sequencedmap.Map[string, *ReferenceOr[Schema]] {
	if c == nil {
		return nil
	}
	return c.Schemas
}

// GetServers returns the value of the Servers field. Returns nil if not set.
func (c *Components) GetServers() *sequencedmap.Map[string, *ReferenceOr[Server]] {
	if c == nil {
		return nil
	}
	return c.Servers
}

// GetChannels returns the value of the Channels field. Returns nil if not set.
func (c *Components) GetChannels() *sequencedmap.Map[string, *Channel] {
	if c == nil {
		return nil
	}
	return c.Channels
}

// GetMessages returns the value of the Messages field. Returns nil if not set.
func (c *Components) GetMessages() *sequencedmap.Map[string, *ReferenceOr[Message]] {
	if c == nil {
		return nil
	}
	return c.Messages
}

// GetSecuritySchemes returns the value of the SecuritySchemes field. Returns nil if not set.
func (c *Components) GetSecuritySchemes() *sequencedmap.Map[string, *ReferenceOr[SecurityScheme]] {
	if c == nil {
		return nil
	}
	return c.SecuritySchemes
}

// GetParameters returns the value of the Parameters field. Returns nil if not set.
func (c *Components) GetParameters() *sequencedmap.Map[string, *ReferenceOr[Parameter]] {
	if c == nil {
		return nil
	}
	return c.Parameters
}

// GetMessageTraits returns the value of the MessageTraits field. Returns nil if not set.
func (c *Components) GetMessageTraits() *sequencedmap.Map[string, *ReferenceOr[MessageTrait]] {
	if c == nil {
		return nil
	}
	return c.MessageTraits
}

// GetOperationTraits returns the value of the OperationTraits field. Returns nil if not set.
func (c *Components) GetOperationTraits() *sequencedmap.Map[string, *ReferenceOr[OperationTrait]] {
	if c == nil {
		return nil
	}
	return c.OperationTraits
}
