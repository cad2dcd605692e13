package httputil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrFieldsInvalid    = errors.New("one or more fields of your request are missing or invalid")
)

// FieldErrors maps request body fields to human readable validation
// messages. The keys are the JSON names of the fields.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	return ErrFieldsInvalid.Error()
}

// Is reports equivalence to ErrFieldsInvalid so that callers can
// discriminate validation failures with errors.Is.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrFieldsInvalid
}

// newFieldErrors translates validator errors for the bound struct into
// a FieldErrors keyed by the JSON field names of the target.
func newFieldErrors(target any, errs validator.ValidationErrors) FieldErrors {
	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	fe := make(FieldErrors, len(errs))
	for _, e := range errs {
		name := e.Field()
		if field, ok := t.FieldByName(e.StructField()); ok {
			if tag, _, _ := strings.Cut(field.Tag.Get("json"), ","); tag != "" && tag != "-" {
				name = tag
			}
		}

		fe[name] = validationErrorToText(e)
	}

	return fe
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "max":
		return fmt.Sprintf("cannot be longer than %s", e.Param())
	case "min":
		return fmt.Sprintf("must be longer than %s", e.Param())
	}
	return fmt.Sprintf("failed on the %q validation", e.Tag())
}
