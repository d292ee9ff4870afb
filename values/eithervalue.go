// Package values provides union types for fields that accept one of several shapes.
package values

import (
	"context"
	"reflect"

	"github.com/speakeasy-api/asyncapi/marshaller"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// EitherValue holds exactly one of two shapes. When decoding, Left is tried before Right and the
// first candidate whose shape matches the node is decoded; its errors are reported as is.
type EitherValue[L any, R any] struct {
	Left  *L
	Right *R
}

var (
	_ marshaller.Unmarshallable = (*EitherValue[string, []string])(nil)
	_ marshaller.Marshallable   = (*EitherValue[string, []string])(nil)
	_ marshaller.Matcher        = (*EitherValue[string, []string])(nil)
)

// NewEitherValueFromLeft creates an EitherValue holding the left shape.
func NewEitherValueFromLeft[L any, R any](left L) *EitherValue[L, R] {
	return &EitherValue[L, R]{Left: &left}
}

// NewEitherValueFromRight creates an EitherValue holding the right shape.
func NewEitherValueFromRight[L any, R any](right R) *EitherValue[L, R] {
	return &EitherValue[L, R]{Right: &right}
}

// IsLeft reports whether the left shape is held.
func (e *EitherValue[L, R]) IsLeft() bool {
	return e != nil && e.Left != nil
}

// IsRight reports whether the right shape is held.
func (e *EitherValue[L, R]) IsRight() bool {
	return e != nil && e.Right != nil
}

// GetLeft returns the left value or nil.
func (e *EitherValue[L, R]) GetLeft() *L {
	if e == nil {
		return nil
	}
	return e.Left
}

// GetRight returns the right value or nil.
func (e *EitherValue[L, R]) GetRight() *R {
	if e == nil {
		return nil
	}
	return e.Right
}

// Candidates names the accepted shapes in the order they are tried.
func (e *EitherValue[L, R]) Candidates() []string {
	return []string{
		marshaller.ShapeName(reflect.TypeFor[L]()),
		marshaller.ShapeName(reflect.TypeFor[R]()),
	}
}

func (e *EitherValue[L, R]) ShapeName() string {
	c := e.Candidates()
	return c[0] + " or " + c[1]
}

func (e *EitherValue[L, R]) MatchesNode(node *yaml.Node) bool {
	return marshaller.Matches(reflect.TypeFor[L](), node) || marshaller.Matches(reflect.TypeFor[R](), node)
}

func (e *EitherValue[L, R]) UnmarshalNode(ctx context.Context, d *marshaller.Decoder, node *yaml.Node) {
	e.Left = nil
	e.Right = nil

	switch {
	case marshaller.Matches(reflect.TypeFor[L](), node):
		var left L
		d.Decode(ctx, node, &left)
		e.Left = &left
	case marshaller.Matches(reflect.TypeFor[R](), node):
		var right R
		d.Decode(ctx, node, &right)
		e.Right = &right
	default:
		d.Report(node, &validation.UnionMismatchError{
			Candidates: e.Candidates(),
			Reason:     "found " + yml.Describe(node),
		})
	}
}

func (e *EitherValue[L, R]) MarshalNode(ctx context.Context) *yaml.Node {
	switch {
	case e == nil:
		return nil
	case e.Left != nil:
		return marshaller.Encode(ctx, e.Left)
	case e.Right != nil:
		return marshaller.Encode(ctx, e.Right)
	default:
		return nil
	}
}
