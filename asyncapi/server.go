package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// SecurityRequirement maps the names of security schemes to the scopes required for them.
type SecurityRequirement = sequencedmap.Map[string, []string]

// NewSecurityRequirement creates a security requirement from scheme name and scope pairs.
func NewSecurityRequirement(elements ...*sequencedmap.Element[string, []string]) *SecurityRequirement {
	return sequencedmap.New(elements...)
}

// Server is a message broker, a server or any other kind of computer program able to send and receive messages.
type Server struct {
	// URL may be relative and may contain variables in {braces}.
	URL string `key:"url" required:"true"`
	// Protocol is the protocol this URL supports for connection, for example mqtt, kafka or amqp.
	Protocol        string                                                  `key:"protocol" required:"true"`
	ProtocolVersion *string                                                 `key:"protocolVersion"`
	Description     *string                                                 `key:"description"`
	Variables       *sequencedmap.Map[string, *ReferenceOr[ServerVariable]] `key:"variables"`
	Security        []*SecurityRequirement                                  `key:"security"`
	Tags            []*Tag                                                  `key:"tags" since:"2.5.0"`
	Bindings        *ReferenceOr[ServerBindings]                            `key:"bindings"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetURL returns the value of the URL field. Returns empty string if not set.
func (s *Server) GetURL() string {
	if s == nil {
		return ""
	}
	return s.URL
}

// GetProtocol returns the value of the Protocol field. Returns empty string if not set.
func (s *Server) GetProtocol() string {
	if s == nil {
		return ""
	}
	return s.Protocol
}

// GetProtocolVersion returns the value of the ProtocolVersion field. Returns empty string if not set.
func (s *Server) GetProtocolVersion() string {
	if s == nil || s.ProtocolVersion == nil {
		return ""
	}
	return *s.ProtocolVersion
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *Server) GetDescription() string {
	if s == nil || s.Description == nil {
		return ""
	}
	return *s.Description
}

// GetVariables returns the value of the Variables field. Returns nil if not set.
func (s *Server) GetVariables() *sequencedmap.Map[string, *ReferenceOr[ServerVariable]] {
	if s == nil {
		return nil
	}
	return s.Variables
}

// GetSecurity returns the value of the Security field. Returns nil if not set.
func (s *Server) GetSecurity() []*SecurityRequirement {
	if s == nil {
		return nil
	}
	return s.Security
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (s *Server) GetTags() []*Tag {
	if s == nil {
		return nil
	}
	return s.Tags
}

// GetBindings returns the value of the Bindings field. Returns nil if not set.
func (s *Server) GetBindings() *ReferenceOr[ServerBindings] {
	if s == nil {
		return nil
	}
	return s.Bindings
}

// ServerVariable is used for server URL template substitution.
type ServerVariable struct {
	Enum        []string `key:"enum"`
	Default     *string  `key:"default"`
	Description *string  `key:"description"`
	Examples    []string `key:"examples"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetDefault returns the value of the Default field. Returns empty string if not set.
func (v *ServerVariable) GetDefault() string {
	if v == nil || v.Default == nil {
		return ""
	}
	return *v.Default
}

// GetEnum returns the value of the Enum field. Returns nil if not set.
func (v *ServerVariable) GetEnum() []string {
	if v == nil {
		return nil
	}
	return v.Enum
}
