// Package analysis computes term statistics over tokenized documents:
// frequency counts, tf-idf weights and within-document co-occurrence.
package analysis

import "sort"

// TermCount pairs a term with its number of occurrences.
type TermCount struct {
	Term  string
	Count int
}

// Frequencies counts term occurrences across all token documents.
func Frequencies(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range doc {
			counts[tok]++
		}
	}
	return counts
}

// Top returns the n most frequent terms, ties broken alphabetically so the
// ordering is reproducible.
func Top(counts map[string]int, n int) []TermCount {
	terms := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	if n > 0 && n < len(terms) {
		terms = terms[:n]
	}
	return terms
}
