package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// CGPA bounds for job eligibility criteria
	CgpaMin = 0.0
	CgpaMax = 10.0
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidName reports whether a display name is within bounds.
func IsValidName(value string) bool {
	return len(value) >= NameMinLength && len(value) <= NameMaxLength
}

// IsValidCgpa reports whether a CGPA is within the 0-10 scale.
func IsValidCgpa(value float64) bool {
	return value >= CgpaMin && value <= CgpaMax
}
