// Package validate runs struct-tag validation and reports failures as domain.ValidationError.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Field names in errors come from the `field` tag, falling back to the Go name.
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("field"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})
	return val
}

// Struct validates s against its `validate` tags. It returns nil or a *domain.ValidationError
// holding one FieldError per failed rule.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

// Merge appends extra field errors to the result of Struct.
func Merge(err error, extra ...domain.FieldError) error {
	if len(extra) == 0 {
		return err
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.NewValidationErrors(append(ve.Errors, extra...))
	}
	if err != nil {
		return err
	}
	return domain.NewValidationErrors(extra)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "max " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "failed " + fe.Tag() + " check"
}
