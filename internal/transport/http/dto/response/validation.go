package response

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse carries the flattened schema-rejection detail: a
// field-path-to-message-list map alongside the error label.
type ValidationErrorResponse struct {
	Status      string              `json:"status"`
	Error       string              `json:"error"`
	FieldErrors map[string][]string `json:"field_errors"`
}

// NewValidationError flattens validator errors into per-field message
// lists. Field names come from json tags (registered on the validator).
func NewValidationError(err error) ValidationErrorResponse {
	fieldErrors := map[string][]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fieldMessage(fe))
		}
	} else if err != nil {
		fieldErrors["body"] = append(fieldErrors["body"], err.Error())
	}

	return ValidationErrorResponse{
		Status:      "error",
		Error:       "invalid_body",
		FieldErrors: fieldErrors,
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
