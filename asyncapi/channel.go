package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// Channel describes the operations available on a single channel.
type Channel struct {
	Description *string `key:"description"`
	// Servers lists the names of the servers this channel is available on. All servers when absent.
	Servers    []string                                           `key:"servers" since:"2.2.0"`
	Subscribe  *ReferenceOr[Operation]                            `key:"subscribe"`
	Publish    *ReferenceOr[Operation]                            `key:"publish"`
	Parameters *sequencedmap.Map[string, *ReferenceOr[Parameter]] `key:"parameters"`
	Bindings   *ReferenceOr[ChannelBindings]                      `key:"bindings"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (c *Channel) GetDescription() string {
	if c == nil || c.Description == nil {
		return ""
	}
	return *c.Description
}

// GetServers returns the value of the Servers field. Returns nil if not set.
func (c *Channel) GetServers() []string {
	if c == nil {
		return nil
	}
	return c.Servers
}

// GetSubscribe returns the value of the Subscribe field. Returns nil if not set.
func (c *Channel) GetSubscribe() *ReferenceOr[Operation] {
	if c == nil {
		return nil
	}
	return c.Subscribe
}

// GetPublish returns the value of the Publish field. Returns nil if not set.
func (c *Channel) GetPublish() *ReferenceOr[Operation] {
	if c == nil {
		return nil
	}
	return c.Publish
}

// GetParameters returns the value of the Parameters field. Returns nil if not set.
func (c *Channel) GetParameters() *sequencedmap.Map[string, *ReferenceOr[Parameter]] {
	if c == nil {
		return nil
	}
	return c.Parameters
}

// GetBindings returns the value of the Bindings field. Returns nil if not set.
func (c *Channel) GetBindings() *ReferenceOr[ChannelBindings] {
	if c == nil {
		return nil
	}
	return c.Bindings
}

// Parameter describes a parameter included in a channel name.
type Parameter struct {
	Description *string              `key:"description"`
	Schema      *ReferenceOr[Schema] `key:"schema"`
	// Location is a runtime expression naming where the value of the parameter is found, for example $message.payload#/user/id.
	Location *string `key:"location"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetSchema returns the value of the Schema field. Returns nil if not set.
func (p *Parameter) GetSchema() *ReferenceOr[Schema] {
	if p == nil {
		return nil
	}
	return p.Schema
}

// GetLocation returns the value of the Location field. Returns empty string if not set.
func (p *Parameter) GetLocation() string {
	if p == nil || p.Location == nil {
		return ""
	}
	return *p.Location
}
