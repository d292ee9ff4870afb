// Package marshaller maps yaml node trees onto tagged Go structs and back.
//
// Struct fields are bound to document keys with a `key` tag. A `required:"true"` tag reports
// a missing key, a `since` tag names the first AsyncAPI version a key is available in.
// The special keys `extensions` and `unrecognized` mark the fields holding raw `x-` keys and,
// in lenient mode, the undeclared keys of an object.
package marshaller

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/internal/version"
	"github.com/speakeasy-api/asyncapi/jsonpointer"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// Mode controls how undeclared keys are handled while decoding.
type Mode int

const (
	// ModeLenient keeps undeclared keys in the unrecognized bucket of the object.
	ModeLenient Mode = iota
	// ModeStrict reports undeclared keys as errors.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	default:
		return "lenient"
	}
}

// Option configures a Decoder.
type Option func(d *Decoder)

// WithMode sets the handling of undeclared keys.
func WithMode(mode Mode) Option {
	return func(d *Decoder) {
		d.mode = mode
	}
}

// WithVersion sets the document version used to check `since` tags.
func WithVersion(v *version.Version) Option {
	return func(d *Decoder) {
		d.version = v
	}
}

// Decoder walks a node tree into Go values, collecting every error it finds along with its location.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	mode    Mode
	version *version.Version
	path    []string
	errs    []error
}

// NewDecoder creates a lenient Decoder with no document version.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mode returns the handling of undeclared keys.
func (d *Decoder) Mode() Mode {
	return d.mode
}

// Version returns the version of the document being decoded, nil when not yet known.
func (d *Decoder) Version() *version.Version {
	return d.version
}

// SetVersion records the version of the document being decoded.
func (d *Decoder) SetVersion(v *version.Version) {
	d.version = v
}

// Path returns the location currently being decoded.
func (d *Decoder) Path() jsonpointer.JSONPointer {
	return jsonpointer.PartsToJSONPointer(d.path)
}

// Report records err against node at the current location.
func (d *Decoder) Report(node *yaml.Node, err error) {
	d.errs = append(d.errs, validation.NewValidationError(err, node, d.Path()))
}

// ReportAt records err against node at the child location part.
func (d *Decoder) ReportAt(part string, node *yaml.Node, err error) {
	pop := d.push(part)
	defer pop()
	d.Report(node, err)
}

// Errors returns the errors reported so far ordered by their position in the source.
func (d *Decoder) Errors() []error {
	errs := make([]error, len(d.errs))
	copy(errs, d.errs)
	validation.SortValidationErrors(errs)
	return errs
}

// Err joins the reported errors, nil when decoding succeeded.
func (d *Decoder) Err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return errors.Join(d.Errors()...)
}

// Decode decodes node into the value pointed to by out.
func (d *Decoder) Decode(ctx context.Context, node *yaml.Node, out any) {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		d.Report(node, &validation.ParseError{Expected: "pointer target", Found: fmt.Sprintf("%T", out)})
		return
	}

	d.unmarshal(ctx, node, v.Elem())
}

// DecodeField decodes node into out at the child location part.
func (d *Decoder) DecodeField(ctx context.Context, part string, node *yaml.Node, out any) {
	pop := d.push(part)
	defer pop()
	d.Decode(ctx, node, out)
}

// DecodeIndex decodes node into out at the child location index.
func (d *Decoder) DecodeIndex(ctx context.Context, index int, node *yaml.Node, out any) {
	d.DecodeField(ctx, strconv.Itoa(index), node, out)
}

// DecodeFields decodes the keys of a mapping node into the tagged fields of structPtr.
// It is meant for Unmarshallable implementations that want the default field handling for themselves.
func (d *Decoder) DecodeFields(ctx context.Context, node *yaml.Node, structPtr any) {
	v := reflect.ValueOf(structPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		d.Report(node, &validation.ParseError{Expected: "struct pointer", Found: fmt.Sprintf("%T", structPtr)})
		return
	}

	d.unmarshalStruct(ctx, resolve(node), v.Elem())
}

func (d *Decoder) push(part string) func() {
	d.path = append(d.path, part)
	return func() {
		d.path = d.path[:len(d.path)-1]
	}
}

func resolve(node *yaml.Node) *yaml.Node {
	return yml.ResolveAlias(yml.UnwrapDocument(yml.ResolveAlias(node)))
}
