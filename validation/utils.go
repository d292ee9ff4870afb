package validation

import (
	"errors"
	"slices"
	"strings"
)

// SortValidationErrors sorts the provided validation errors by line and column number lowest to highest.
// Errors that are not validation errors keep their relative order after the validation errors.
func SortValidationErrors(allErrors []error) {
	if len(allErrors) == 0 {
		return
	}

	var validErrs []*Error
	var otherErrs []error
	for _, err := range allErrors {
		var vErr *Error
		if errors.As(err, &vErr) {
			validErrs = append(validErrs, vErr)
		} else {
			otherErrs = append(otherErrs, err)
		}
	}

	slices.SortStableFunc(validErrs, compareValidationErrors)

	idx := 0
	for _, vErr := range validErrs {
		allErrors[idx] = vErr
		idx++
	}
	for _, err := range otherErrs {
		allErrors[idx] = err
		idx++
	}
}

func compareValidationErrors(a, b *Error) int {
	if a.GetLineNumber() != b.GetLineNumber() {
		return a.GetLineNumber() - b.GetLineNumber()
	}
	if a.GetColumnNumber() != b.GetColumnNumber() {
		return a.GetColumnNumber() - b.GetColumnNumber()
	}
	if a.Rule != b.Rule {
		return strings.Compare(a.Rule, b.Rule)
	}
	return strings.Compare(string(a.Path), string(b.Path))
}
