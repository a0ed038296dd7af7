package utils

import (
	"sort"
	"strings"
)

// FilterKeywordSuggestions flattens the keyword lists of all materials into
// a deduplicated, alphabetically sorted suggestion list containing the query
// as a case-insensitive substring, truncated to maxResults.
func FilterKeywordSuggestions(keywordLists [][]string, query string, maxResults int) []string {
	needle := strings.ToLower(strings.TrimSpace(query))

	seen := make(map[string]bool)
	suggestions := []string{}

	for _, keywords := range keywordLists {
		for _, keyword := range keywords {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}

			lowered := strings.ToLower(keyword)
			if seen[lowered] {
				continue
			}
			seen[lowered] = true

			if strings.Contains(lowered, needle) {
				suggestions = append(suggestions, keyword)
			}
		}
	}

	sort.Strings(suggestions)

	if maxResults > 0 && len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	return suggestions
}
