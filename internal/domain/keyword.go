package domain

import "strings"

// MatchKeywords reports whether text equals any of the configured keywords.
// Both sides are normalized by trimming surrounding whitespace and
// lower-casing, so matching is case- and padding-insensitive but never
// substring-based: "hello" does not match "hello world". An empty or absent
// keyword set matches nothing.
func MatchKeywords(keywords []string, text string) bool {
	if len(keywords) == 0 {
		return false
	}
	normalized := normalizeKeyword(text)
	for _, keyword := range keywords {
		if normalizeKeyword(keyword) == normalized {
			return true
		}
	}
	return false
}

func normalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
