package validation

const (
	RuleValidationRequiredField    = "validation-required-field"
	RuleValidationTypeMismatch     = "validation-type-mismatch"
	RuleValidationUnionMismatch    = "validation-union-mismatch"
	RuleValidationUnknownField     = "validation-unknown-field"
	RuleValidationInvalidReference = "validation-invalid-reference"
	RuleValidationInvalidExample   = "validation-invalid-example"
)

// ExampleError is returned when a message example does not satisfy the payload schema of its message.
type ExampleError struct {
	Message string
}

func (e *ExampleError) Error() string {
	return e.Message
}

// RuleFor returns the rule identifier reported for err.
func RuleFor(err error) string {
	switch e := err.(type) {
	case *ParseError:
		if e.Required {
			return RuleValidationRequiredField
		}
		return RuleValidationTypeMismatch
	case *UnionMismatchError:
		return RuleValidationUnionMismatch
	case *UnknownFieldError:
		return RuleValidationUnknownField
	case *InvalidReferenceError:
		return RuleValidationInvalidReference
	case *ExampleError:
		return RuleValidationInvalidExample
	default:
		return RuleValidationTypeMismatch
	}
}
