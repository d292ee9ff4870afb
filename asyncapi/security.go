package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
)

// SecuritySchemeType is the type of a security scheme.
type SecuritySchemeType string

const (
	SecuritySchemeTypeUserPassword         SecuritySchemeType = "userPassword"
	SecuritySchemeTypeAPIKey               SecuritySchemeType = "apiKey"
	SecuritySchemeTypeX509                 SecuritySchemeType = "X509"
	SecuritySchemeTypeSymmetricEncryption  SecuritySchemeType = "symmetricEncryption"
	SecuritySchemeTypeAsymmetricEncryption SecuritySchemeType = "asymmetricEncryption"
	SecuritySchemeTypeHTTPAPIKey           SecuritySchemeType = "httpApiKey"
	SecuritySchemeTypeHTTP                 SecuritySchemeType = "http"
	SecuritySchemeTypeOAuth2               SecuritySchemeType = "oauth2"
	SecuritySchemeTypeOpenIDConnect        SecuritySchemeType = "openIdConnect"
	SecuritySchemeTypePlain                SecuritySchemeType = "plain"
	SecuritySchemeTypeScramSHA256          SecuritySchemeType = "scramSha256"
	SecuritySchemeTypeScramSHA512          SecuritySchemeType = "scramSha512"
	SecuritySchemeTypeGSSAPI               SecuritySchemeType = "gssapi"
)

// SecurityScheme defines a security scheme that can be used by the servers.
// Unknown types are kept as is.
type SecurityScheme struct {
	Type        SecuritySchemeType `key:"type" required:"true"`
	Description *string            `key:"description"`
	// Name is the name of the header, query or cookie parameter used by httpApiKey schemes.
	Name *string `key:"name"`
	// In is the location of the API key: user or password for apiKey, query, header or cookie for httpApiKey.
	In               *string     `key:"in"`
	Scheme           *string     `key:"scheme"`
	BearerFormat     *string     `key:"bearerFormat"`
	Flows            *OAuthFlows `key:"flows"`
	OpenIDConnectURL *string     `key:"openIdConnectUrl"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetType returns the value of the Type field. Returns empty string if not set.
func (s *SecurityScheme) GetType() SecuritySchemeType {
	if s == nil {
		return ""
	}
	return s.Type
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (s *SecurityScheme) GetDescription() string {
	if s == nil || s.Description == nil {
		return ""
	}
	return *s.Description
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (s *SecurityScheme) GetName() string {
	if s == nil || s.Name == nil {
		return ""
	}
	return *s.Name
}

// GetIn returns the value of the In field. Returns empty string if not set.
func (s *SecurityScheme) GetIn() string {
	if s == nil || s.In == nil {
		return ""
	}
	return *s.In
}

// GetScheme returns the value of the Scheme field. Returns empty string if not set.
func (s *SecurityScheme) GetScheme() string {
	if s == nil || s.Scheme == nil {
		return ""
	}
	return *s.Scheme
}

// GetBearerFormat returns the value of the BearerFormat field. Returns empty string if not set.
func (s *SecurityScheme) GetBearerFormat() string {
	if s == nil || s.BearerFormat == nil {
		return ""
	}
	return *s.BearerFormat
}

// GetFlows returns the value of the Flows field. Returns nil if not set.
func (s *SecurityScheme) GetFlows() *OAuthFlows {
	if s == nil {
		return nil
	}
	return s.Flows
}

// GetOpenIDConnectURL returns the value of the OpenIDConnectURL field. Returns empty string if not set.
func (s *SecurityScheme) GetOpenIDConnectURL() string {
	if s == nil || s.OpenIDConnectURL == nil {
		return ""
	}
	return *s.OpenIDConnectURL
}

// OAuthFlows allows configuration of the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow `key:"implicit"`
	Password          *OAuthFlow `key:"password"`
	ClientCredentials *OAuthFlow `key:"clientCredentials"`
	AuthorizationCode *OAuthFlow `key:"authorizationCode"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// OAuthFlow is the configuration of a single OAuth flow.
type OAuthFlow struct {
	AuthorizationURL *string                           `key:"authorizationUrl"`
	TokenURL         *string                           `key:"tokenUrl"`
	RefreshURL       *string                           `key:"refreshUrl"`
	Scopes           *sequencedmap.Map[string, string] `key:"scopes"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetAuthorizationURL returns the value of the AuthorizationURL field. Returns empty string if not set.
func (f *OAuthFlow) GetAuthorizationURL() string {
	if f == nil || f.AuthorizationURL == nil {
		return ""
	}
	return *f.AuthorizationURL
}

// GetTokenURL returns the value of the TokenURL field. Returns empty string if not set.
func (f *OAuthFlow) GetTokenURL() string {
	if f == nil || f.TokenURL == nil {
		return ""
	}
	return *f.TokenURL
}

// GetScopes returns the value of the Scopes field. Returns nil if not set.
func (f *OAuthFlow) GetScopes() *sequencedmap.Map[string, string] {
	if f == nil {
		return nil
	}
	return f.Scopes
}
