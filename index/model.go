package index

import (
	"math"
	"sort"
	"strings"

	"github.com/poiesic/lexrank/core"
)

// Model is a term-weighted vector representation of a corpus. It maps each
// document to an L2-normalized tf-idf row and can project arbitrary query
// text into the same term space.
type Model struct {
	vocabulary map[string]int // term -> column
	idf        []float64      // smoothed inverse document frequency per column
	rows       [][]float64    // one unit-length tf-idf row per document
	revision   core.Revision
}

// Fit builds a Model over the given documents. The vocabulary is the set
// of distinct tokens across all documents, columns assigned in sorted term
// order so fitting is deterministic.
func Fit(documents []string) *Model {
	counts := make([]map[string]int, len(documents))
	docFreq := make(map[string]int)

	for i, doc := range documents {
		counts[i] = make(map[string]int)
		for _, term := range Tokenize(doc) {
			counts[i][term]++
		}
		for term := range counts[i] {
			docFreq[term]++
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := len(documents)
	for col, term := range terms {
		vocabulary[term] = col
		idf[col] = math.Log(float64(n)/float64(docFreq[term])) + 1
	}

	rows := make([][]float64, n)
	for i := range documents {
		row := make([]float64, len(terms))
		for term, count := range counts[i] {
			col := vocabulary[term]
			row[col] = float64(count) * idf[col]
		}
		normalize(row)
		rows[i] = row
	}

	return &Model{
		vocabulary: vocabulary,
		idf:        idf,
		rows:       rows,
		revision:   core.Fingerprint(strings.Join(documents, "\n")),
	}
}

// Transform projects query text into the model's term space and returns a
// unit-length weight vector. Terms outside the corpus vocabulary carry no
// weight. A query with no recognized terms yields the zero vector.
func (m *Model) Transform(text string) []float64 {
	vec := make([]float64, len(m.idf))
	for _, term := range Tokenize(text) {
		if col, ok := m.vocabulary[term]; ok {
			vec[col] += m.idf[col]
		}
	}
	normalize(vec)
	return vec
}

// Similarity returns the cosine similarity between a transformed query
// vector and document row i. Both sides are unit length (or zero), so this
// is a plain dot product in [0, 1].
func (m *Model) Similarity(query []float64, i int) float64 {
	row := m.rows[i]
	var dot float64
	for col, w := range query {
		dot += w * row[col]
	}
	return dot
}

// Recognized returns the distinct query terms present in the corpus
// vocabulary, in first-seen order.
func (m *Model) Recognized(text string) []string {
	seen := make(map[string]bool)
	var terms []string
	for _, term := range Tokenize(text) {
		if _, ok := m.vocabulary[term]; ok && !seen[term] {
			seen[term] = true
			terms = append(terms, term)
		}
	}
	return terms
}

// Rows returns the number of documents the model was fitted over.
func (m *Model) Rows() int {
	return len(m.rows)
}

// Terms returns the corpus vocabulary size.
func (m *Model) Terms() int {
	return len(m.idf)
}

// Revision identifies the corpus this model was fitted from.
func (m *Model) Revision() core.Revision {
	return m.revision
}

// normalize scales v to unit length in place. The zero vector is left as is.
func normalize(v []float64) {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}
