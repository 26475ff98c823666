// Package validation wraps go-playground/validator for request payloads.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gokatarajesh/trivia-api/internal/apperror"
)

// Validator checks struct tags and reports the first failing field.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that names fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Check validates s. Fields are checked in declaration order and the first
// failure becomes a BadRequest. messages maps "<field>.<tag>" or "<field>" (json
// names) to the text returned to the client, the tag-specific key winning.
func (v *Validator) Check(s any, messages map[string]string) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.Internal(err)
	}

	first := fieldErrs[0]
	if msg, ok := messages[first.Field()+"."+first.Tag()]; ok {
		return apperror.BadRequest("%s", msg)
	}
	if msg, ok := messages[first.Field()]; ok {
		return apperror.BadRequest("%s", msg)
	}
	return apperror.BadRequest("%s is invalid", first.Field())
}
