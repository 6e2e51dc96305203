// =============================================================================
// Transaction Report Converter - Validation Helpers
// =============================================================================
//
// This module wraps go-playground/validator with an error type that carries
// the offending field and value, so configuration problems read like messages
// to an operator instead of struct-tag jargon. The flow-specific cross-field
// rules live next to the flow types in internal/config; this package only
// knows about structs and tags.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	// Field is the struct namespace of the offending field, e.g.
	// "FlowConfig.Fields[2].Kind".
	Field string

	// Message is a human-readable description of the problem.
	Message string

	// Value is the offending value, rendered as a string.
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewError builds a ValidationError for a cross-field rule check.
func NewError(field, message, value string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a struct against its `validate` tags and converts the
// outcome into field-level errors. A nil slice means the struct is valid.
func Struct(v any) []*ValidationError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []*ValidationError{{Field: "struct", Message: err.Error()}}
	}

	out := make([]*ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &ValidationError{
			Field:   fe.Namespace(),
			Message: describeTag(fe),
			Value:   fmt.Sprintf("%v", fe.Value()),
		})
	}
	return out
}

// describeTag renders a validator tag failure as plain language.
func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// FormatErrors joins validation errors into a single semicolon-separated
// message suitable for one operator-facing line.
func FormatErrors(errs []*ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
