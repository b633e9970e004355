package keyword

import "strings"

// Match returns the keywords that appear in text, preserving the order of
// the keywords slice. Matching is a case-insensitive substring check.
// Blank keywords never match.
func Match(text string, keywords []string) []string {
	if text == "" || len(keywords) == 0 {
		return nil
	}

	lowered := strings.ToLower(text)

	var matched []string
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		trimmed := strings.TrimSpace(kw)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		if strings.Contains(lowered, key) {
			matched = append(matched, trimmed)
			seen[key] = struct{}{}
		}
	}
	return matched
}

// MatchesAny reports whether at least one keyword appears in text.
func MatchesAny(text string, keywords []string) bool {
	return len(Match(text, keywords)) > 0
}
