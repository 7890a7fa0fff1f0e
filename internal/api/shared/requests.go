package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// FieldErrors converts a validator error into a field-to-message map keyed by
// the struct's json tag names. Returns nil if the error carries no field
// information.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = tagMessage(fe.Tag(), fe.Param())
	}
	return fields
}

// tagMessage maps validation tags to user-friendly messages.
func tagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return "too short (minimum " + param + ")"
	case "max":
		return "too long (maximum " + param + ")"
	case "gt":
		return "must be greater than " + param
	case "uuid":
		return "must be a valid UUID"
	case "datetime":
		return "must be a date in the form " + param
	default:
		return "validation failed"
	}
}
