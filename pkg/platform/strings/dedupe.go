// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// NormalizeKey trims whitespace and uppercases an identifier so lookups are
// insensitive to how clients typed it.
func NormalizeKey(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// DedupeAndTrimUpper removes duplicates and empty strings from a slice,
// normalizing each element with NormalizeKey. Order is preserved.
//
// Example:
//
//	DedupeAndTrimUpper([]string{"  cl0a ", "CL0A", "", "cl0b"})
//	// Returns: []string{"CL0A", "CL0B"}
func DedupeAndTrimUpper(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		key := NormalizeKey(v)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			result = append(result, key)
		}
	}

	return result
}
