// Package redact provides utilities for redacting sensitive information
// from strings before they are logged or returned in error responses.
// Records carry personal data (names, email addresses), so raw error
// text must be scrubbed before it reaches the logs.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedEmailPlaceholder = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
)

// Precompiled regex patterns
var (
	// Email addresses, the main PII this service handles
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// File paths that could leak deployment layout
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	// Credentials that might surface through config errors
	credentialRegex = regexp.MustCompile(`(?i)(password|passwd|secret|token|api[_-]?key)([=:\s]?['"]?)[^'"&\s]{3,}`)

	patterns = []*regexp.Regexp{emailRegex, unixPathRegex, credentialRegex}

	patternPlaceholders = map[*regexp.Regexp]string{
		emailRegex:      RedactedEmailPlaceholder,
		unixPathRegex:   RedactedPathPlaceholder,
		credentialRegex: RedactionPlaceholder,
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
