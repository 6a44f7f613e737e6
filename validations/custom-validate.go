package validations

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomErrorMessage maps field names and validation tags to more user-friendly error messages.
var CustomErrorMessage = map[string]map[string]string{
	"Amount": {
		"amount": "Amount must be a positive decimal number.",
	},
	"Mode": {
		"oneof": "Mode must be one of SELF, TO_ACCOUNT or CARD.",
	},
}

// FormatValidationError formats validator errors into a more readable format.
func FormatValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var errorMessages []string
		for _, fieldErr := range ve {
			field := fieldErr.Field()
			tag := fieldErr.Tag()
			if msg, ok := CustomErrorMessage[field][tag]; ok {
				errorMessages = append(errorMessages, msg)
			} else {
				errorMessages = append(errorMessages, fmt.Sprintf("Field '%s' failed validation on the '%s' rule.", field, tag))
			}
		}
		return fmt.Sprintf("Validation errors: %v", errorMessages)
	}
	return "Invalid input."
}
