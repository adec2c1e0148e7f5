package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a title into a URL-safe slug.
// "Hardcore Summer: 2025 Recap!" → "hardcore-summer-2025-recap"
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugHyphens.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// TruncateRunes returns the first n runes of s. Safe for multi-byte input.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
