package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError turns a binding error into a client-facing detail.
// Field names come from the validator, lowercased to match the JSON casing.
func HandleValidationError(err error) *ErrorDetail {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return NewErrorDetail(ErrorCodeInvalidRequest, "Invalid request body")
	}

	messages := make([]string, 0, len(validationErrors))
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		if detail.Field == "" {
			detail.Field = field
		}
		messages = append(messages, fmt.Sprintf("%s: %s", field, ruleMessage(fe)))
	}
	return detail.WithDetails(messages)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "coursecode":
		return "must be a valid course code, e.g. CS101"
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}
