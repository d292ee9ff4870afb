// Package references models the `$ref` strings found in AsyncAPI documents.
// References are kept opaque: resolving them against a document is left to the caller.
package references

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/jsonpointer"
)

const (
	// ErrEmptyReference is returned when a reference holds no value.
	ErrEmptyReference = errors.Error("reference must not be empty")
	// ErrInvalidURI is returned when the document part of a reference is not a valid URI.
	ErrInvalidURI = errors.Error("invalid reference URI")
	// ErrInvalidJSONPointer is returned when the fragment of a reference is not a valid JSON pointer.
	ErrInvalidJSONPointer = errors.Error("invalid reference JSON pointer")
)

// Reference is a `$ref` value, for example `#/components/messages/UserSignedUp` or `common.yaml#/Schema`.
type Reference string

var _ fmt.Stringer = (*Reference)(nil)

// GetURI returns the document part of the reference, empty for local references.
func (r Reference) GetURI() string {
	uri, _, _ := strings.Cut(string(r), "#")
	return strings.TrimSpace(uri)
}

// HasJSONPointer reports whether the reference carries a fragment.
func (r Reference) HasJSONPointer() bool {
	return strings.Contains(string(r), "#")
}

// IsLocal reports whether the reference points into the same document.
func (r Reference) IsLocal() bool {
	return r.GetURI() == "" && r.HasJSONPointer()
}

// GetJSONPointer returns the fragment of the reference as a JSON pointer.
// A bare `#` points at the document root.
func (r Reference) GetJSONPointer() jsonpointer.JSONPointer {
	_, fragment, found := strings.Cut(string(r), "#")
	if !found {
		return ""
	}

	pointer := strings.TrimSpace(fragment)
	if pointer == "" {
		return jsonpointer.Root
	}

	if decoded, err := url.PathUnescape(pointer); err == nil {
		pointer = decoded
	}

	return jsonpointer.JSONPointer(pointer)
}

// Validate performs syntactic checks only. The target of the reference is never looked up.
func (r Reference) Validate() error {
	if strings.TrimSpace(string(r)) == "" {
		return ErrEmptyReference
	}

	if uri := r.GetURI(); uri != "" {
		if _, err := url.Parse(uri); err != nil {
			return ErrInvalidURI.Wrap(err)
		}
	}

	if r.HasJSONPointer() {
		if err := r.GetJSONPointer().Validate(); err != nil {
			return ErrInvalidJSONPointer.Wrap(err)
		}
	}

	return nil
}

func (r Reference) String() string {
	return string(r)
}
