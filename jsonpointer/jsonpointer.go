// Package jsonpointer provides JSONPointer an implementation of RFC6901 https://datatracker.ietf.org/doc/html/rfc6901
package jsonpointer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/speakeasy-api/asyncapi/errors"
)

const (
	// ErrNotFound is returned when the target is not found.
	ErrNotFound = errors.Error("not found")
	// ErrInvalidPath is returned when the path is invalid.
	ErrInvalidPath = errors.Error("invalid path")
	// ErrValidation is returned when the jsonpointer is invalid.
	ErrValidation = errors.Error("validation error")
)

// Root is the pointer to the whole document.
const Root JSONPointer = "/"

// JSONPointer represents a JSON Pointer value as defined by RFC6901 https://datatracker.ietf.org/doc/html/rfc6901
type JSONPointer string

var tokenRegex = regexp.MustCompile("^(?:[\x00-\x2E\x30-\x7D\x7F-\uffff]|~[01])*$")

// String returns the pointer as a string.
func (j JSONPointer) String() string {
	return string(j)
}

// Validate will validate the JSONPointer is valid as per RFC6901.
func (j JSONPointer) Validate() error {
	if _, err := j.tokens(); err != nil {
		return ErrValidation.Wrap(err)
	}
	return nil
}

// Parts returns the unescaped reference tokens of the pointer.
func (j JSONPointer) Parts() ([]string, error) {
	tokens, err := j.tokens()
	if err != nil {
		return nil, ErrValidation.Wrap(err)
	}

	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parts = append(parts, Unescape(token))
	}
	return parts, nil
}

// Append returns a new pointer with the provided unescaped parts added.
func (j JSONPointer) Append(parts ...string) JSONPointer {
	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(string(j), "/"))
	for _, part := range parts {
		sb.WriteByte('/')
		sb.WriteString(EscapeString(part))
	}
	if sb.Len() == 0 {
		return Root
	}
	return JSONPointer(sb.String())
}

func (j JSONPointer) tokens() ([]string, error) {
	if len(j) == 0 {
		return nil, fmt.Errorf("jsonpointer must not be empty")
	}

	if j == Root {
		return nil, nil
	}

	if !strings.HasPrefix(string(j), "/") {
		return nil, fmt.Errorf("jsonpointer must start with /: %s", string(j))
	}

	tokens := strings.Split(strings.TrimPrefix(string(j), "/"), "/")
	for _, token := range tokens {
		if !tokenRegex.MatchString(token) {
			return nil, fmt.Errorf("jsonpointer part must be a valid token [%s]: %s", tokenRegex.String(), string(j))
		}
	}

	return tokens, nil
}

// PartsToJSONPointer will convert the exploded parts of a JSONPointer to a JSONPointer.
func PartsToJSONPointer(parts []string) JSONPointer {
	if len(parts) == 0 {
		return Root
	}

	var sb strings.Builder
	for _, part := range parts {
		sb.WriteByte('/')
		sb.WriteString(EscapeString(part))
	}
	return JSONPointer(sb.String())
}

// EscapeString escapes a string for use as a reference token in a JSON pointer according to RFC6901.
func EscapeString(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

// Unescape reverses EscapeString.
func Unescape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}

func parseIndex(token string) (int, bool) {
	if token == "" || (len(token) > 1 && token[0] == '0') {
		return 0, false
	}
	index, err := strconv.Atoi(token)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
