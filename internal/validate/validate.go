// Package validate wraps go-playground/validator with JSON-field-oriented
// error reporting for the API request structs.
package validate

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// v is shared across requests; validator.Validate is safe for concurrent use.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the JSON field name, not the Go field name.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return val
}

// FieldErrors maps a JSON field name to a human-readable problem description.
type FieldErrors map[string]string

// Error is the structured outcome of a failed validation. Missing lists the
// fields that failed the required rule, so callers can distinguish absent
// fields from present-but-invalid ones.
type Error struct {
	Fields  FieldErrors
	Missing []string
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// MissingOnly reports whether every failure was a missing required field.
func (e *Error) MissingOnly() bool {
	return len(e.Missing) > 0 && len(e.Missing) == len(e.Fields)
}

// Struct checks s against its `validate` struct tags. It returns nil when s
// is valid. Validation failure is an expected outcome, never a panic: an
// unvalidatable value (e.g. a non-struct) is reported as a generic field
// error on "_".
func Struct(s any) *Error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Fields: FieldErrors{"_": "invalid request payload"}}
	}

	out := &Error{Fields: make(FieldErrors, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = message(fe)
		if fe.Tag() == "required" {
			out.Missing = append(out.Missing, fe.Field())
		}
	}
	return out
}

// message renders a single rule failure. Kept deliberately terse; the field
// name is the map key.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
