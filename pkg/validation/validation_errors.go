package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// CandidateProfile fields
	"FullName":        "Full name",
	"Title":           "Professional title",
	"Bio":             "Bio",
	"City":            "City",
	"Country":         "Country",
	"CareerLevel":     "Career level",
	"ExperienceYears": "Years of experience",
	"Skills":          "Skills",
	"CvURL":           "CV URL",
	"PhotoURL":        "Photo URL",

	// Job fields
	"Description":    "Description",
	"Qualifications": "Qualifications",
	"JobCategory":    "Job category",
	"JobType":        "Job type",
	"Workplace":      "Workplace",
	"Status":         "Status",

	// Company fields
	"Name":     "Company name",
	"Website":  "Website",
	"Industry": "Industry",
	"About":    "About",

	// Auth fields
	"Email":    "Email",
	"Password": "Password",
	"Role":     "Role",

	// Pipeline / invitation fields
	"Stage":    "Pipeline stage",
	"Notes":    "Notes",
	"Message":  "Message",
	"Question": "Question",
}

// FormatValidationErrors converts validator errors into user-facing messages.
// Non-validator errors fall back to their Error() string.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "gte":
		return fmt.Sprintf("%s: must be %s or more", label, param)
	case "lte":
		return fmt.Sprintf("%s: must be %s or less", label, param)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and common punctuation are allowed", label)
	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
