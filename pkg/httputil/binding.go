package httputil

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorFields extracts per-field detail from a gin binding error.
// Non-validator errors (malformed JSON, type mismatches) yield no fields.
func BindingErrorFields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:  strings.ToLower(fe.Field()),
			Reason: reasonForTag(fe),
		})
	}
	return fields
}

func reasonForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	default:
		return "failed validation: " + fe.Tag()
	}
}
