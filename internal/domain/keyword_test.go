package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeywords_ExactMatchOnly(t *testing.T) {
	// whole-text equality, never substring or prefix matching
	assert.True(t, MatchKeywords([]string{"hello"}, "hello"))
	assert.False(t, MatchKeywords([]string{"hello"}, "hello world"))
	assert.False(t, MatchKeywords([]string{"hello"}, "say hello"))
	assert.False(t, MatchKeywords([]string{"hello world"}, "hello"))
}

func TestMatchKeywords_CaseAndWhitespaceInsensitive(t *testing.T) {
	assert.True(t, MatchKeywords([]string{"hello"}, " HELLO "))
	assert.True(t, MatchKeywords([]string{"  Hello  "}, "hello"))
	assert.True(t, MatchKeywords([]string{"สวัสดี"}, " สวัสดี "))
}

func TestMatchKeywords_AnyOfSemantics(t *testing.T) {
	keywords := []string{"hi", "hello", "hey"}
	assert.True(t, MatchKeywords(keywords, "hello"))
	assert.True(t, MatchKeywords(keywords, "HEY"))
	assert.False(t, MatchKeywords(keywords, "howdy"))
}

func TestMatchKeywords_EmptyKeywordSetNeverMatches(t *testing.T) {
	assert.False(t, MatchKeywords(nil, "hello"))
	assert.False(t, MatchKeywords([]string{}, "hello"))
	assert.False(t, MatchKeywords(nil, ""))
}

func TestMatchKeywords_EmptyText(t *testing.T) {
	assert.False(t, MatchKeywords([]string{"hello"}, ""))
	// a whitespace-only keyword normalizes to the empty string
	assert.True(t, MatchKeywords([]string{"  "}, ""))
}
