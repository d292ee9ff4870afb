// Package errors provides const sentinel errors that can carry a cause while still matching with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeparator sits between a sentinel message and its cause in wrapped error strings.
const ErrSeparator = " -- "

// Error is a string based error type allowing packages to declare const errors.
type Error string

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target is this sentinel or a wrapped instance of it.
func (s Error) Is(target error) bool {
	if target == nil {
		return false
	}
	msg := target.Error()
	return msg == string(s) || strings.HasPrefix(msg, string(s)+ErrSeparator)
}

// Wrap attaches err as the cause of this sentinel.
func (s Error) Wrap(err error) error {
	return &wrappedError{sentinel: s, cause: err}
}

// Wrapf attaches a formatted cause to this sentinel.
func (s Error) Wrapf(format string, args ...any) error {
	return &wrappedError{sentinel: s, cause: fmt.Errorf(format, args...)}
}

type wrappedError struct {
	sentinel Error
	cause    error
}

func (w *wrappedError) Error() string {
	if w.cause == nil {
		return string(w.sentinel)
	}
	return string(w.sentinel) + ErrSeparator + w.cause.Error()
}

func (w *wrappedError) Is(target error) bool {
	return w.sentinel.Is(target)
}

func (w *wrappedError) Unwrap() error {
	return w.cause
}

// The below shadow the standard library so callers only need one errors import.

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error with the provided message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error wrapping all non-nil errs.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// UnwrapErrors flattens an error created by Join back into its parts.
func UnwrapErrors(err error) []error {
	if err == nil {
		return nil
	}

	if je, ok := err.(interface{ Unwrap() []error }); ok {
		return je.Unwrap()
	}
	return []error{err}
}
