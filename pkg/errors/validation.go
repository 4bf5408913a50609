package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePositive checks that a named quantity is a finite number above zero.
// The sizing math divides by cell ratings and rounds desired values, so NaN,
// infinities and non-positive values are rejected before they reach it.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateCount checks that a series or parallel count is at least one.
func ValidateCount(name string, n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "%s must be at least 1, got %d", name, n)
	}
	return nil
}

// ValidateCellID validates a cell profile identifier.
//
// Identifiers are lower-case snake case (e.g. "high_capacity"), at most
// 64 characters, and may contain digits after the first letter.
func ValidateCellID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "cell id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "cell id too long (max 64 characters)")
	}
	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_' && i > 0:
		case unicode.IsDigit(r) && i > 0:
		default:
			return New(ErrCodeInvalidInput, "invalid cell id %q (use lower-case letters, digits and _)", id)
		}
	}
	if strings.HasSuffix(id, "_") {
		return New(ErrCodeInvalidInput, "invalid cell id %q (cannot end with _)", id)
	}
	return nil
}
