package validation

import "fmt"

// CustomMessage returns the per-field, per-tag validation messages. Field
// names are the JSON names carried on the DTOs.
func CustomMessage(field string) map[string]string {
	var customValidationMessages = map[string]map[string]string{
		"firstName": {
			"required": "must be at least 3 characters long",
			"min":      "must be at least 3 characters long",
		},
		"lastName": {
			"required": "must be at least 3 characters long",
			"min":      "must be at least 3 characters long",
		},
		"email": {
			"required": "must be a valid email",
			"email":    "must be a valid email",
		},
		"password": {
			"required": "must be at least 8 characters long",
			"min":      "must be at least 8 characters long",
		},
		"phoneNo": {
			"required": "must be at least 11 characters long",
			"min":      "must be at least 11 characters long",
			"max":      "must not be over 11 characters long",
		},
	}
	return customValidationMessages[field]
}

// DefaultMessage builds a fallback message for tags without a custom entry.
func DefaultMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s does not meet the minimum length", field)
	case "max":
		return fmt.Sprintf("%s exceeds the maximum length", field)
	default:
		return fmt.Sprintf("%s is not valid", field)
	}
}

// Message resolves the message for a failed field/tag pair, preferring the
// custom table.
func Message(field, tag string) string {
	if fieldMessages := CustomMessage(field); fieldMessages != nil {
		if msg, exists := fieldMessages[tag]; exists {
			return msg
		}
	}
	return DefaultMessage(field, tag)
}
