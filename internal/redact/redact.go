// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. A reading carries a
// person's name and birth date, so besides credentials and connection strings
// this package also masks personal data.
package redact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedDatePlaceholder       = "[REDACTED_DATE]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order: connection strings go before e-mails because
// user:password@host looks like an address.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)\b(postgres(?:ql)?|mysql|mongodb)://[^@\s]+@`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|access[_-]?key)(\s*[:=]\s*['"]?)[A-Za-z0-9_\-.~+/]{8,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: RedactedEmailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b(?:\d{4}-\d{1,2}-\d{1,2}|\d{1,2}/\d{1,2}/\d{2,4})\b`),
		placeholder: RedactedDatePlaceholder,
	},
	{
		pattern: regexp.MustCompile(
			`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[\s\S]*?\b(FROM|INTO|SET)\b[^;]*`,
		),
		placeholder: RedactedSQLPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){3,}`),
		placeholder: RedactedPathPlaceholder,
	},
}

// personalKeys are log attribute keys whose values identify a person.
var personalKeys = map[string]bool{
	"name":        true,
	"full_name":   true,
	"email":       true,
	"birth_day":   true,
	"birth_month": true,
	"birth_date":  true,
}

// credentialKeys are log attribute keys whose values are secrets.
var credentialKeys = map[string]bool{
	"password":     true,
	"database_url": true,
	"dsn":          true,
	"url":          true,
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Name masks a personal name, keeping only the first letter of each word:
// "John Doe" becomes "J*** D***". The mask length does not reveal the
// original word length.
func Name(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		first, _ := utf8.DecodeRuneInString(word)
		words[i] = string(first) + "***"
	}
	return strings.Join(words, " ")
}

// IsSensitiveKey reports whether values logged under key must be masked.
func IsSensitiveKey(key string) bool {
	key = strings.ToLower(key)
	return personalKeys[key] || credentialKeys[key]
}

// Value masks value according to the attribute key it is logged under.
// Names keep their initials; other sensitive values are replaced entirely;
// everything else goes through String.
func Value(key, value string) string {
	switch key = strings.ToLower(key); {
	case key == "name" || key == "full_name":
		return Name(value)
	case personalKeys[key] || credentialKeys[key]:
		if value == "" {
			return ""
		}
		return RedactionPlaceholder
	default:
		return String(value)
	}
}
