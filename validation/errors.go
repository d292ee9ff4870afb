// Package validation describes the structured errors produced while decoding AsyncAPI documents.
package validation

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/asyncapi/jsonpointer"
	"gopkg.in/yaml.v3"
)

// Error represents a validation error, the location in the document it relates to and the line and column where it occurred.
type Error struct {
	UnderlyingError error
	Path            jsonpointer.JSONPointer
	Line            int
	Column          int
	Rule            string
}

var _ error = (*Error)(nil)

// NewValidationError creates an error located at node and path, deriving the rule from the type of err.
// Nodes without a source position, such as those built in memory, give a line and column of -1.
func NewValidationError(err error, node *yaml.Node, path jsonpointer.JSONPointer) *Error {
	line, column := -1, -1
	if node != nil && node.Line > 0 {
		line, column = node.Line, node.Column
	}

	return &Error{
		UnderlyingError: err,
		Path:            path,
		Line:            line,
		Column:          column,
		Rule:            RuleFor(err),
	}
}

func (e Error) Error() string {
	return fmt.Sprintf("[%d:%d] %s at %s", e.Line, e.Column, e.UnderlyingError.Error(), e.Path)
}

func (e Error) Unwrap() error {
	return e.UnderlyingError
}

// GetLineNumber returns the line of the offending node or -1 when unknown.
func (e Error) GetLineNumber() int {
	return e.Line
}

// GetColumnNumber returns the column of the offending node or -1 when unknown.
func (e Error) GetColumnNumber() int {
	return e.Column
}

// ParseError is a structural mismatch between a node and the shape expected at its location.
type ParseError struct {
	Expected string
	Found    string
	Required bool
}

func (e *ParseError) Error() string {
	if e.Required {
		return fmt.Sprintf("missing required field `%s`", e.Expected)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Found)
}

// UnionMismatchError is returned when a node matches none of the candidate shapes of a polymorphic field.
type UnionMismatchError struct {
	Candidates []string
	Reason     string
}

func (e *UnionMismatchError) Error() string {
	msg := fmt.Sprintf("value matches none of [%s]", strings.Join(e.Candidates, ", "))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// UnknownFieldError is returned in strict mode for keys that are not declared for an object.
// Since is set when the key exists, but only from a later AsyncAPI version than the document declares.
type UnknownFieldError struct {
	Key   string
	Since string
}

func (e *UnknownFieldError) Error() string {
	if e.Since != "" {
		return fmt.Sprintf("field `%s` is not available before asyncapi %s", e.Key, e.Since)
	}
	return fmt.Sprintf("unknown field `%s`", e.Key)
}

// InvalidReferenceError is returned for `$ref` values that are empty or malformed.
type InvalidReferenceError struct {
	Value string
	Cause error
}

func (e *InvalidReferenceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invalid reference `%s`", e.Value)
	}
	return fmt.Sprintf("invalid reference `%s`: %s", e.Value, e.Cause.Error())
}

func (e *InvalidReferenceError) Unwrap() error {
	return e.Cause
}
