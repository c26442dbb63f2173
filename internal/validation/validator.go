package validation

import (
	"regexp"
	"strings"
)

// Validator provides common validation utilities
type Validator struct {
	emailRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		// Syntactic check only: local part, @, domain with at least one dot.
		emailRegex: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength checks if a string does not exceed the given length
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	return len(s) <= max
}

// IsValidEmail checks if a string is a syntactically valid email address
func (v *Validator) IsValidEmail(s string) bool {
	return v.emailRegex.MatchString(s)
}

// IsOneOf checks if a string is one of the allowed values
func (v *Validator) IsOneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
