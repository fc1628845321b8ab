package errors

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// MaxTextLength is the maximum number of characters accepted for a single sheet.
const MaxTextLength = 2000

// MaxColumn is the widest grid a template may request.
const MaxColumn = 40

// ValidateText validates copybook input text.
//
// The validation rules are intentionally conservative:
//   - No empty text
//   - No control characters (newlines and tabs included)
//   - Maximum of [MaxTextLength] user-perceived characters
//
// Whitespace is allowed; it lays out as a regular cell.
func ValidateText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "text cannot be empty")
	}

	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "text contains invalid control characters")
		}
	}

	if n := uniseg.GraphemeClusterCount(text); n > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (%d characters, max %d)", n, MaxTextLength)
	}

	return nil
}

// ValidateCharacter checks that s is exactly one user-perceived character.
func ValidateCharacter(s string) error {
	if s == "" {
		return New(ErrCodeInvalidCharacter, "character cannot be empty")
	}
	if n := uniseg.GraphemeClusterCount(s); n != 1 {
		return New(ErrCodeInvalidCharacter, "expected a single character, got %d", n)
	}
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidCharacter, "character %q is not printable", s)
		}
	}
	return nil
}

// ValidateColumn checks that a grid width is within 1..MaxColumn.
func ValidateColumn(column int) error {
	if column <= 0 {
		return New(ErrCodeInvalidConfig, "column must be positive, got %d", column)
	}
	if column > MaxColumn {
		return New(ErrCodeInvalidConfig, "column too large (max %d), got %d", MaxColumn, column)
	}
	return nil
}

// poemIDRegex matches library identifiers such as "1" or "jing-ye-si".
var poemIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ValidatePoemID validates a poetry library identifier.
func ValidatePoemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "poem id cannot be empty")
	}
	if !poemIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid poem id: %q", id)
	}
	return nil
}

// ValidateFormatName validates an output format token (e.g. "json").
func ValidateFormatName(format string) error {
	if format == "" || strings.TrimSpace(format) != format {
		return New(ErrCodeInvalidFormat, "invalid format: %q", format)
	}
	for _, r := range format {
		if !unicode.IsLower(r) {
			return New(ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return nil
}
