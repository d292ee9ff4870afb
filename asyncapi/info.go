package asyncapi

import "github.com/speakeasy-api/asyncapi/extensions"

// Info provides metadata about the API.
type Info struct {
	// Title is the title of the application.
	Title string `key:"title" required:"true"`
	// Version is the version of the application API, not the AsyncAPI version.
	Version string `key:"version" required:"true"`
	// Description is a short description of the application. CommonMark syntax can be used.
	Description *string `key:"description"`
	// TermsOfService is a URL to the terms of service for the API.
	TermsOfService *string `key:"termsOfService"`
	// Contact is the contact information for the exposed API.
	Contact *Contact `key:"contact"`
	// License is the license information for the exposed API.
	License *License `key:"license"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (i *Info) GetTitle() string {
	if i == nil {
		return ""
	}
	return i.Title
}

// GetVersion returns the value of the Version field. Returns empty string if not set.
func (i *Info) GetVersion() string {
	if i == nil {
		return ""
	}
	return i.Version
}

// GetDescription returns the value of the Description field. Returns empty string if not set.
func (i *Info) GetDescription() string {
	if i == nil || i.Description == nil {
		return ""
	}
	return *i.Description
}

// GetTermsOfService returns the value of the TermsOfService field. Returns empty string if not set.
func (i *Info) GetTermsOfService() string {
	if i == nil || i.TermsOfService == nil {
		return ""
	}
	return *i.TermsOfService
}

// GetContact returns the value of the Contact field. Returns nil if not set.
func (i *Info) GetContact() *Contact {
	if i == nil {
		return nil
	}
	return i.Contact
}

// GetLicense returns the value of the License field. Returns nil if not set.
func (i *Info) GetLicense() *License {
	if i == nil {
		return nil
	}
	return i.License
}

// GetExtensions returns the value of the Extensions field. Returns an empty extensions map if not set.
func (i *Info) GetExtensions() *extensions.Extensions {
	if i == nil || i.Extensions == nil {
		return extensions.New()
	}
	return i.Extensions
}

// Contact information for the exposed API.
type Contact struct {
	Name  *string `key:"name"`
	URL   *string `key:"url"`
	Email *string `key:"email"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (c *Contact) GetName() string {
	if c == nil || c.Name == nil {
		return ""
	}
	return *c.Name
}

// GetURL returns the value of the URL field. Returns empty string if not set.
func (c *Contact) GetURL() string {
	if c == nil || c.URL == nil {
		return ""
	}
	return *c.URL
}

// GetEmail returns the value of the Email field. Returns empty string if not set.
func (c *Contact) GetEmail() string {
	if c == nil || c.Email == nil {
		return ""
	}
	return *c.Email
}

// License information for the exposed API.
type License struct {
	Name string  `key:"name" required:"true"`
	URL  *string `key:"url"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`
}

// GetName returns the value of the Name field. Returns empty string if not set.
func (l *License) GetName() string {
	if l == nil {
		return ""
	}
	return l.Name
}

// GetURL returns the value of the URL field. Returns empty string if not set.
func (l *License) GetURL() string {
	if l == nil || l.URL == nil {
		return ""
	}
	return *l.URL
}
