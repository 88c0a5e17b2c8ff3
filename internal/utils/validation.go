package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Allow the characters that occur in region, country, crop, and
	// indicator names: letters, digits, spaces, ampersand, hyphen,
	// apostrophe, parentheses, dot.
	validNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 &'().-]+$`)

	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)
)

// ValidateName validates that a dimension value (region, country, crop,
// indicator) is safe and within reasonable limits.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("name too long (max 100 characters)")
	}

	if !validNamePattern.MatchString(name) {
		return errors.New("name contains invalid characters")
	}

	return nil
}

// ValidateQuery validates free-form query strings before they reach the
// store layer.
func ValidateQuery(query string) error {
	// Empty queries are allowed
	if query == "" {
		return nil
	}

	if len(query) > 200 {
		return errors.New("query too long (max 200 characters)")
	}

	if dangerousPattern.MatchString(query) {
		return errors.New("query contains invalid characters")
	}

	return nil
}
