package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterKeywordSuggestionsSubstringProperty(t *testing.T) {
	keywordLists := [][]string{
		{"Forest Management", "Biodiversity", "Soil"},
		{"forestry basics", "Water"},
	}

	suggestions := FilterKeywordSuggestions(keywordLists, "forest", 10)

	assert.NotEmpty(t, suggestions)
	for _, s := range suggestions {
		assert.Contains(t, strings.ToLower(s), "forest")
	}
}

func TestFilterKeywordSuggestionsDedupesAndTrims(t *testing.T) {
	keywordLists := [][]string{
		{"  Forestry  ", "forestry", ""},
		{"Forestry", "   "},
	}

	suggestions := FilterKeywordSuggestions(keywordLists, "forest", 10)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "Forestry", suggestions[0])
}

func TestFilterKeywordSuggestionsSortedAndTruncated(t *testing.T) {
	keywordLists := [][]string{
		{"tree rings", "tree bark", "tree canopy", "tree roots"},
	}

	suggestions := FilterKeywordSuggestions(keywordLists, "tree", 2)
	assert.Equal(t, []string{"tree bark", "tree canopy"}, suggestions)
}

func TestFilterKeywordSuggestionsNoMatches(t *testing.T) {
	keywordLists := [][]string{{"Biodiversity", "Soil"}}

	suggestions := FilterKeywordSuggestions(keywordLists, "zzz", 10)
	assert.Empty(t, suggestions)
}
