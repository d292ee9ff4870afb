package asyncapi

import (
	"context"
	"iter"

	"github.com/speakeasy-api/asyncapi/jsonpointer"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/walk"
)

// Walk returns an iterator over every model of the document, starting with the document itself.
func Walk(ctx context.Context, doc *Document) iter.Seq[walk.Item] {
	return func(yield func(walk.Item) bool) {
		if doc == nil {
			return
		}
		for item := range walk.Walk(ctx, doc) {
			if !yield(item) {
				return
			}
		}
	}
}

// ReferenceLocation is a `$ref` found in a document.
type ReferenceLocation struct {
	Reference references.Reference
	// Location points at the object holding the `$ref` key.
	Location jsonpointer.JSONPointer
}

type referencer interface {
	IsReference() bool
	GetReference() references.Reference
}

// References lists every `$ref` of the document, in the order Walk visits them. References are not resolved.
func (d *Document) References(ctx context.Context) []ReferenceLocation {
	var refs []ReferenceLocation

	for item := range Walk(ctx, d) {
		r, ok := item.Value.(referencer)
		if !ok || !r.IsReference() {
			continue
		}

		refs = append(refs, ReferenceLocation{
			Reference: r.GetReference(),
			Location:  item.Location.ToJSONPointer(),
		})
	}

	return refs
}
