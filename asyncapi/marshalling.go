package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/marshaller"
)

type Option[T any] func(o *T)

type UnmarshalOptions struct {
	mode marshaller.Mode
}

// WithStrict rejects keys that are not declared for an object, or not available in the version of the document.
func WithStrict() Option[UnmarshalOptions] {
	return func(o *UnmarshalOptions) {
		o.mode = marshaller.ModeStrict
	}
}

// WithLenient keeps undeclared keys in the Unrecognized field of their object. This is the default.
func WithLenient() Option[UnmarshalOptions] {
	return func(o *UnmarshalOptions) {
		o.mode = marshaller.ModeLenient
	}
}
