package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Phone pattern: optional +, digits with common separators, 7-20 chars.
// German numbers are often written with spaces or slashes (e.g. "030 / 1234567").
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 /\-]{5,18}[0-9]$`)

// RegisterValidators registers custom validators and field naming to the
// validator instance used by the request binding layer.
func RegisterValidators(v *validator.Validate) {
	// Report field paths as they appear in the JSON body (firstName, not FirstName)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}
