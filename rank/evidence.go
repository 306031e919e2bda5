package rank

import (
	"sort"
	"strings"

	"github.com/poiesic/lexrank/index"
)

// NoOverlap is the evidence marker for results whose keyword text shares
// no literal token with the query.
const NoOverlap = "none"

// matchedTerms returns the sorted set intersection of query tokens and
// record keyword tokens. Sorting keeps repeated rankings byte-identical.
func matchedTerms(queryTokens map[string]bool, keywordText string) []string {
	seen := make(map[string]bool)
	var matched []string
	for _, term := range index.Tokenize(keywordText) {
		if queryTokens[term] && !seen[term] {
			seen[term] = true
			matched = append(matched, term)
		}
	}
	sort.Strings(matched)
	return matched
}

// formatEvidence renders matched terms as a comma-joined list, or the
// NoOverlap marker when the intersection is empty.
func formatEvidence(terms []string) string {
	if len(terms) == 0 {
		return NoOverlap
	}
	return strings.Join(terms, ", ")
}

// tokenSet builds a membership set from query text.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, term := range index.Tokenize(text) {
		set[term] = true
	}
	return set
}
