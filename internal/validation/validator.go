// Package validation wraps go-playground/validator and renders field
// errors in the array-of-{msg,param} shape the API has always returned.
package validation

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"devconnect/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json tag names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates a DTO and returns nil when it passes.
func Struct(s any) []dto.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Msg: "Invalid request body"}}
	}

	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{Msg: message(fe), Param: fe.Field()})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return title(fe.Field()) + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		if fe.Field() == "password" {
			return "Please enter a password with 6 or more characters"
		}
		return title(fe.Field()) + " is too short"
	default:
		return title(fe.Field()) + " is invalid"
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
