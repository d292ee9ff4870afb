// Package asyncapi provides a typed model of AsyncAPI 2.x documents that can be decoded from and
// encoded back to YAML or JSON without losing extensions or unrecognized content.
package asyncapi

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/internal/version"
	"github.com/speakeasy-api/asyncapi/marshaller"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

const (
	// ErrInvalidDocument is returned when the input can't be read or isn't valid YAML or JSON.
	ErrInvalidDocument = errors.Error("invalid asyncapi document")
)

// Version is the latest AsyncAPI version supported by this package.
const Version = "2.6.0"

var (
	minimumVersion = version.New(2, 0, 0)
	maximumVersion = version.New(2, 6, 0)
)

// Document is the root object of an AsyncAPI document.
type Document struct {
	// AsyncAPI is the version of the AsyncAPI specification the document uses.
	AsyncAPI string  `key:"asyncapi" required:"true"`
	ID       *string `key:"id"`
	Info     Info    `key:"info" required:"true"`
	// Servers maps server names to the servers the API is available on.
	Servers            *sequencedmap.Map[string, *ReferenceOr[Server]] `key:"servers"`
	DefaultContentType *string                                         `key:"defaultContentType"`
	// Channels maps channel paths, relative to the servers, to the channels of the API.
	Channels     *sequencedmap.Map[string, *Channel] `key:"channels" required:"true"`
	Components   *Components                         `key:"components"`
	Tags         []*Tag                              `key:"tags"`
	ExternalDocs *ExternalDocumentation              `key:"externalDocs"`

	Extensions   *extensions.Extensions `key:"extensions"`
	Unrecognized *extensions.Extensions `key:"unrecognized"`

	config *yml.Config
}

var _ marshaller.Unmarshallable = (*Document)(nil)

// UnmarshalNode reads the asyncapi version of the document before any other field so that
// version specific fields can be checked.
func (d *Document) UnmarshalNode(ctx context.Context, dec *marshaller.Decoder, node *yaml.Node) {
	if _, valueNode, ok := yml.GetMapElementNodes(ctx, node, "asyncapi"); ok {
		valueNode = yml.ResolveAlias(valueNode)
		if valueNode != nil && valueNode.Kind == yaml.ScalarNode && valueNode.ShortTag() != "!!null" {
			v, err := parseDocumentVersion(valueNode.Value)
			if err != nil {
				dec.ReportAt("asyncapi", valueNode, err)
			} else {
				dec.SetVersion(v)
			}
		}
	}

	dec.DecodeFields(ctx, node, d)
}

func parseDocumentVersion(value string) (*version.Version, error) {
	v, err := version.Parse(value)
	if err != nil {
		return nil, &validation.ParseError{Expected: "version string", Found: fmt.Sprintf("`%s`", value)}
	}

	// patch releases of a supported minor version are accepted
	if v.Major != minimumVersion.Major || v.LessThan(*minimumVersion) || v.Minor > maximumVersion.Minor {
		return nil, &validation.ParseError{
			Expected: fmt.Sprintf("version between %s and %s", minimumVersion, maximumVersion),
			Found:    fmt.Sprintf("`%s`", value),
		}
	}

	return v, nil
}

// Unmarshal reads an AsyncAPI document in YAML or JSON from r.
// Structural problems are returned as a joined error of *validation.Error values, in which case no document is returned.
// The format and indentation of the input are remembered and used by Marshal.
func Unmarshal(ctx context.Context, r io.Reader, opts ...Option[UnmarshalOptions]) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrInvalidDocument.Wrap(err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrInvalidDocument.Wrapf("empty document")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, ErrInvalidDocument.Wrap(err)
	}

	doc, err := UnmarshalNode(ctx, &root, opts...)
	if err != nil {
		return nil, err
	}

	doc.config = yml.GetConfigFromDoc(data, &root)

	return doc, nil
}

// UnmarshalNode decodes an AsyncAPI document from an already parsed document or mapping node.
func UnmarshalNode(ctx context.Context, node *yaml.Node, opts ...Option[UnmarshalOptions]) (*Document, error) {
	o := UnmarshalOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	dec := marshaller.NewDecoder(marshaller.WithMode(o.mode))

	var doc Document
	dec.Decode(ctx, node, &doc)

	if err := dec.Err(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// MarshalNode builds the node tree of doc.
func MarshalNode(ctx context.Context, doc *Document) *yaml.Node {
	return marshaller.Encode(ctx, doc)
}

// Marshal writes doc to w. The output format is taken from a yml.Config in ctx, then from the
// format the document was read in, and defaults to YAML indented with 2 spaces.
func Marshal(ctx context.Context, doc *Document, w io.Writer) error {
	if doc == nil {
		return ErrInvalidDocument.Wrapf("nil document")
	}

	if !yml.HasConfig(ctx) && doc.config != nil {
		ctx = yml.ContextWithConfig(ctx, doc.config)
	}

	return marshaller.Render(ctx, MarshalNode(ctx, doc), w)
}

// GetAsyncAPI returns the value of the AsyncAPI field. Returns empty string if not set.
func (d *Document) GetAsyncAPI() string {
	if d == nil {
		return ""
	}
	return d.AsyncAPI
}

// GetID returns the value of the ID field. Returns empty string if not set.
func (d *Document) GetID() string {
	if d == nil || d.ID == nil {
		return ""
	}
	return *d.ID
}

// GetInfo returns the value of the Info field. Returns nil if not set.
func (d *Document) GetInfo() *Info {
	if d == nil {
		return nil
	}
	return &d.Info
}

// GetServers returns the value of the Servers field. Returns nil if not set.
func (d *Document) GetServers() *sequencedmap.Map[string, *ReferenceOr[Server]] {
	if d == nil {
		return nil
	}
	return d.Servers
}

// GetDefaultContentType returns the value of the DefaultContentType field. Returns empty string if not set.
func (d *Document) GetDefaultContentType() string {
	if d == nil || d.DefaultContentType == nil {
		return ""
	}
	return *d.DefaultContentType
}

// GetChannels returns the value of the Channels field. Returns nil if not set.
func (d *Document) GetChannels() *sequencedmap.Map[string, *Channel] {
	if d == nil {
		return nil
	}
	return d.Channels
}

// GetComponents returns the value of the Components field. Returns nil if not set.
func (d *Document) GetComponents() *Components {
	if d == nil {
		return nil
	}
	return d.Components
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (d *Document) GetTags() []*Tag {
	if d == nil {
		return nil
	}
	return d.Tags
}

// GetExternalDocs returns the value of the ExternalDocs field. Returns nil if not set.
func (d *Document) GetExternalDocs() *ExternalDocumentation {
	if d == nil {
		return nil
	}
	return d.ExternalDocs
}

// GetExtensions returns the value of the Extensions field. Returns an empty extensions map if not set.
func (d *Document) GetExtensions() *extensions.Extensions {
	if d == nil || d.Extensions == nil {
		return extensions.New()
	}
	return d.Extensions
}
