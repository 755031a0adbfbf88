package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed field constraint as returned to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Form error messages, matching the wording shown on the website
const (
	msgRequired     = "Dieses Feld ist erforderlich"
	msgEmail        = "Bitte geben Sie eine gültige E-Mail-Adresse ein"
	msgPrivacy      = "Sie müssen der Datenschutzerklärung zustimmen"
	msgPhone        = "Bitte geben Sie eine gültige Telefonnummer ein"
	msgInvalidValue = "Ungültiger Wert für dieses Feld"
)

// FormatBindingError converts a request binding error into field-level
// errors, preserving the order in which constraints are declared. Returns
// nil when the error carries no field information (e.g. malformed JSON).
func FormatBindingError(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErrors := make([]FieldError, 0, len(validationErrors))
		for _, e := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   e.Field(),
				Message: formatSingleError(e),
			})
		}
		return fieldErrors
	}

	// A wrong-typed field (e.g. privacy sent as a string) fails JSON
	// decoding before validation runs, but still names the field.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{Field: typeErr.Field, Message: msgInvalidValue}}
	}

	return nil
}

// formatSingleError maps a validator tag to the user-facing German message
func formatSingleError(e validator.FieldError) string {
	// privacy must be literal true; "required" on a bool rejects false
	if e.Field() == "privacy" {
		return msgPrivacy
	}

	switch e.Tag() {
	case "required":
		return msgRequired
	case "min":
		return fmt.Sprintf("Mindestens %s Zeichen erforderlich", e.Param())
	case "max":
		return fmt.Sprintf("Maximal %s Zeichen erlaubt", e.Param())
	case "email":
		return msgEmail
	case "valid_phone":
		return msgPhone
	default:
		return msgInvalidValue
	}
}
