package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// audiences are the subscription tiers a notification can target.
var audiences = map[string]bool{
	"all":  true,
	"free": true,
	"paid": true,
}

// New creates a new validator instance with custom validations registered.
// This ensures consistent validation across the application and tests.
func New() *validator.Validate {
	v := validator.New()

	// "notblank" rejects whitespace-only strings
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return true // Not a string, let other validators handle it
		}
		return strings.TrimSpace(str) != ""
	})

	_ = v.RegisterValidation("audience", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return true
		}
		return audiences[strings.ToLower(str)]
	})

	return v
}
