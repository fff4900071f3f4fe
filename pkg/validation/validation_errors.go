package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps form field keys to the labels shown next to the inputs
var FieldLabels = map[string]string{
	// Application form
	"resume_url":   "Resume URL",
	"cover_letter": "Cover letter",

	// Post job form
	"title":        "Job title",
	"company":      "Company name",
	"location":     "Location",
	"type":         "Employment type",
	"description":  "Job description",
	"requirements": "Requirements",
	"salary_range": "Salary range",
	"deadline":     "Deadline",

	// Profile form
	"full_name": "Full name",
	"email":     "Email",
	"phone":     "Phone",
	"bio":       "Bio",
	"skills":    "Skills",
}

// requiredMessages overrides the generic "is required" wording where the form
// historically used its own
var requiredMessages = map[string]string{
	"type":         "Employment type is required",
	"requirements": "Requirements are required",
}

// FieldErrors converts validator.ValidationErrors into one message per form field.
// Returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		key := e.Field()
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = formatSingleError(e)
	}
	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	key := e.Field()
	label := getFieldLabel(key)
	param := e.Param()

	switch e.Tag() {
	case "required", "not_blank":
		if msg, ok := requiredMessages[key]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", label)

	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, param)

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)

	case "http_url":
		return fmt.Sprintf("%s must be an http(s) link", label)

	case "valid_phone":
		return fmt.Sprintf("%s must be 7-15 digits, optionally starting with +", label)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "date_only":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", label)

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(key string) string {
	if label, ok := FieldLabels[key]; ok {
		return label
	}
	label := strings.ReplaceAll(key, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
