package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold normalizes a string for case-insensitive comparison.
//   - Composes unicode (NFC normalization), so "Pokémon" typed with a
//     combining accent compares equal to the precomposed form
//   - Lowercases
//   - Trims surrounding whitespace
//
// Used for cache keys and user-entered filter matching.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// ContainsFold reports whether substr occurs in s, ignoring case and
// unicode composition differences.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}

// EqualFold reports whether two strings are equal after normalization.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
