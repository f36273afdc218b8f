package search

import (
	"strings"

	"github.com/trivia-api/backend/internal/domain/question"
)

// Matches reports whether term occurs in text, ignoring case.
func Matches(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// Filter returns the questions whose text contains term, ignoring case.
// Input order is preserved. The result is never nil.
func Filter(term string, qs []*question.Question) []*question.Question {
	matches := make([]*question.Question, 0)
	for _, q := range qs {
		if Matches(q.Question, term) {
			matches = append(matches, q)
		}
	}
	return matches
}
