package index

import "strings"

// Tokenize splits text into lowercase terms on whitespace. Empty input
// yields no terms. Punctuation is kept as part of a term; keyword texts
// are expected to be plain space-separated words.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	terms := make([]string, 0, len(fields))
	for _, field := range fields {
		terms = append(terms, strings.ToLower(field))
	}
	return terms
}
