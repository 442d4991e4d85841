package utils

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FirstValidationMessage turns a gin binding error into the message of the
// first violated field only; later violations are not reported.
func FirstValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

func jsonFieldName(structField string) string {
	r, size := utf8.DecodeRuneInString(structField)
	if r == utf8.RuneError {
		return structField
	}
	return string(unicode.ToLower(r)) + structField[size:]
}
