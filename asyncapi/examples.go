package asyncapi

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"

	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/json"
	"github.com/speakeasy-api/asyncapi/jsonpointer"
	"github.com/speakeasy-api/asyncapi/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const documentResource = "asyncapi.json"

var defaultPrinter = message.NewPrinter(language.English)

// ValidateExamples checks the payload of every message example against the payload schema of its message.
// Messages whose payload is not a schema are skipped. Local references in payload schemas are resolved
// against the document, remote references are not fetched and are reported as errors.
func (d *Document) ValidateExamples(ctx context.Context) []error {
	if d == nil {
		return nil
	}

	type target struct {
		message  *Message
		location jsonpointer.JSONPointer
	}

	var targets []target
	for item := range Walk(ctx, d) {
		m, ok := item.Value.(*Message)
		if !ok || !m.GetPayload().IsSchema() || len(m.Examples) == 0 {
			continue
		}
		targets = append(targets, target{message: m, location: item.Location.ToJSONPointer()})
	}

	if len(targets) == 0 {
		return nil
	}

	var buf bytes.Buffer
	if err := json.YAMLToJSON(MarshalNode(ctx, d), 0, &buf); err != nil {
		return []error{validation.NewValidationError(&validation.ExampleError{Message: err.Error()}, nil, jsonpointer.Root)}
	}

	docJSON, err := jsValidator.UnmarshalJSON(&buf)
	if err != nil {
		return []error{validation.NewValidationError(&validation.ExampleError{Message: err.Error()}, nil, jsonpointer.Root)}
	}

	c := jsValidator.NewCompiler()
	c.DefaultDraft(jsValidator.Draft7)
	if err := c.AddResource(documentResource, docJSON); err != nil {
		return []error{validation.NewValidationError(&validation.ExampleError{Message: err.Error()}, nil, jsonpointer.Root)}
	}

	var errs []error
	for _, t := range targets {
		if ctx.Err() != nil {
			break
		}

		payloadLocation := t.location.Append("payload")

		schema, err := c.Compile(documentResource + "#" + (&url.URL{Fragment: payloadLocation.String()}).EscapedFragment())
		if err != nil {
			errs = append(errs, validation.NewValidationError(&validation.ExampleError{
				Message: fmt.Sprintf("payload schema cannot be compiled: %s", err.Error()),
			}, nil, payloadLocation))
			continue
		}

		for i, example := range t.message.Examples {
			if example == nil || example.Payload == nil {
				continue
			}

			exampleLocation := t.location.Append("examples", strconv.Itoa(i), "payload")
			errs = append(errs, validateExample(schema, example.Payload, exampleLocation)...)
		}
	}

	validation.SortValidationErrors(errs)

	return errs
}

func validateExample(schema *jsValidator.Schema, payload *yaml.Node, location jsonpointer.JSONPointer) []error {
	var buf bytes.Buffer
	if err := json.YAMLToJSON(payload, 0, &buf); err != nil {
		return []error{validation.NewValidationError(&validation.ExampleError{Message: err.Error()}, nil, location)}
	}

	instance, err := jsValidator.UnmarshalJSON(&buf)
	if err != nil {
		return []error{validation.NewValidationError(&validation.ExampleError{Message: err.Error()}, nil, location)}
	}

	err = schema.Validate(instance)
	if err == nil {
		return nil
	}

	var validationErr *jsValidator.ValidationError
	if errors.As(err, &validationErr) {
		return getRootCauses(validationErr, location)
	}

	return []error{validation.NewValidationError(&validation.ExampleError{Message: err.Error()}, nil, location)}
}

func getRootCauses(err *jsValidator.ValidationError, location jsonpointer.JSONPointer) []error {
	if len(err.Causes) == 0 {
		return []error{validation.NewValidationError(&validation.ExampleError{
			Message: err.ErrorKind.LocalizedString(defaultPrinter),
		}, nil, location.Append(err.InstanceLocation...))}
	}

	errs := []error{}
	for _, cause := range err.Causes {
		errs = append(errs, getRootCauses(cause, location)...)
	}

	return errs
}
