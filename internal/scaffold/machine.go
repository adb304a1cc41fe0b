// Package scaffold creates a new custom theme from a starter template.
// It derives a machine name from the human-readable label, then runs a
// short pipeline of steps that fetch, extract, and mirror the template
// into the destination directory before placeholder tokens are rewritten.
package scaffold

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize converts a human-readable theme label into a machine name.
// It lowercases the input and replaces every run of characters outside
// [a-z0-9_] with a single underscore. Leading and trailing underscores
// are kept so the result maps one-to-one onto the input shape.
func Normalize(label string) string {
	// Normalize Unicode to NFC form before lowering.
	s := norm.NFC.String(label)
	s = strings.ToLower(s)

	run := regexp.MustCompile(`[^a-z0-9_]+`)
	return run.ReplaceAllString(s, "_")
}
