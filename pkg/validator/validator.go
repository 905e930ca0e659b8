package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Report fields by their JSON name so messages match the request body
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Validate decimals as plain numbers so numeric tags (gt=0) apply
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// ValidationError aggregates every failed check of one request.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// FromResponses converts struct validation failures into a ValidationError,
// or nil when there are none.
func FromResponses(errs []*ErrorResponse) *ValidationError {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, describe(e))
	}
	return NewValidationError(messages...)
}

func describe(e *ErrorResponse) string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.FailedField)
	case "gt":
		return fmt.Sprintf("%s must be greater than 0", e.FailedField)
	case "lte":
		return fmt.Sprintf("%s must be at most %s", e.FailedField, e.Value)
	default:
		return fmt.Sprintf("%s failed on '%s'", e.FailedField, e.Tag)
	}
}
