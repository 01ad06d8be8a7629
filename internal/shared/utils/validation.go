package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cotracker/cotracker/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(tagName)
}

// tagName reports json names, falling back to form names for query structs.
func tagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ValidateStruct validates s and returns a validation AppError listing every
// failing field.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if appErr := ValidationErrorFrom(err); appErr != nil {
			return appErr
		}
		return err
	}
	return nil
}

// ValidationErrorFrom converts validator errors (including those returned by
// gin's ShouldBind*) into a validation AppError. It returns nil for other errors.
func ValidationErrorFrom(err error) *errors.AppError {
	var ves validator.ValidationErrors
	if !stderrors.As(err, &ves) || len(ves) == 0 {
		return nil
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, fieldErrorMessage(fe))
	}
	return errors.NewValidationError("Validation failed", strings.Join(msgs, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	if name := snakeField(fe); name != "" {
		field = name
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "alphanum":
		return fmt.Sprintf("%s must contain only alphanumeric characters", field)
	case "numeric":
		return fmt.Sprintf("%s must be a valid number", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}

// snakeField recovers the tag name when the error came from gin's own
// validator instance, which reports Go field names.
func snakeField(fe validator.FieldError) string {
	if fe.Field() != fe.StructField() {
		return ""
	}
	var b strings.Builder
	for i, r := range fe.Field() {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BindError classifies an error from gin's ShouldBind*: validator failures
// become validation errors, malformed bodies become bad requests.
func BindError(err error) error {
	if appErr := ValidationErrorFrom(err); appErr != nil {
		return appErr
	}
	return errors.NewBadRequestError("invalid request body", err.Error())
}
