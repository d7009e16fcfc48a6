package application

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "manifestPath" -> "manifest path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"manifestPath": "manifest path",
		"outputPath":   "output path",
		"targetYear":   "target year",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ParseYear parses the target year argument. Unlike the permissive record
// parser, anything that is not a plain base-10 integer is rejected.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidYear, s)
	}
	return year, nil
}
