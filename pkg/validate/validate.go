// Package validate wires custom rules into gin's binding validator and turns
// validator errors into the single first-violation message the API returns.
package validate

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRules installs the custom password rule and makes error messages
// use JSON field names. Safe to call more than once.
func RegisterRules() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("containsdigit", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if unicode.IsDigit(r) {
				return true
			}
		}
		return false
	})
}

// Message extracts the first violated field's message from a binding error.
// Non-validator errors (malformed JSON, wrong types) fall through as-is.
func Message(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	return fieldMessage(verrs[0])
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", name)
	case "email":
		return fmt.Sprintf("%q must be a valid email", name)
	case "eqfield":
		return fmt.Sprintf("%q must match %q", name, strings.ToLower(fe.Param()))
	case "containsdigit":
		return fmt.Sprintf("%q should contain at least 1 numeric character", name)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be at least %s characters long", name, fe.Param())
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", name, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", name, fe.Param())
		}
		return fmt.Sprintf("%q must be less than or equal to %s", name, fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", name)
	}
}
