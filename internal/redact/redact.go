// Package redact provides utilities for redacting sensitive information from
// strings before they are logged or returned in error responses. Gemini API
// errors can echo back request URLs carrying the API key, and auth failures
// can carry bearer tokens; this package keeps both out of the logs.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_JWT]"
)

// Precompiled regex patterns
var (
	// Google API keys (the form the genai client puts in request URLs)
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_-]{20,}`)

	// Generic credentials and tokens in key=value or key: value form
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// JWT token pattern - matches the standard three-part base64url-encoded format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{googleKeyRegex, RedactedKeyPlaceholder},
		{jwtTokenRegex, RedactedTokenPlaceholder},
		{apiKeyRegex, RedactedCredentialPlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, entry := range patternPlaceholders {
		result = entry.pattern.ReplaceAllString(result, entry.placeholder)
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
