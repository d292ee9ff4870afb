package asyncapi

import "github.com/speakeasy-api/asyncapi/extensions"

// Tag adds metadata to a single tag used by other objects.
type Tag struct {
	Name         string                 `key:"name" required:"true"`
	Description  *string                `key:"description"`
	ExternalDocs *ExternalDocumentation `key:"externalDocs"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (t *Tag) GetName() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (t *Tag) GetDescription() string {
	if t == nil || t.Description == nil {
		return ""
	}
	return *t.Description
}

// GetExternalDocs returns the value of the ExternalDocs field. Returns nil if not set.
func (t *Tag) GetExternalDocs() *ExternalDocumentation {
	if t == nil {
		return nil
	}
	return t.ExternalDocs
}

// ExternalDocumentation allows referencing an external resource for extended documentation.
type ExternalDocumentation struct {
	Description *string `key:"description"`
	URL         string  `key:"url" required:"true"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (e *ExternalDocumentation) GetDescription() string {
	if e == nil || e.Description == nil {
		return ""
	}
	return *e.Description
}

// GetURL returns the value of the URL field. Returns empty string if not set.
func (e *ExternalDocumentation) GetURL() string {
	if e == nil {
		return ""
	}
	return e.URL
}
