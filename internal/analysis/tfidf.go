package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TermWeight pairs a term with its tf-idf weight in one document.
type TermWeight struct {
	Term   string
	Weight float64
}

// Vectorizer maps token documents onto a document-term matrix over a fixed
// vocabulary. Fit once, then transform any document set; terms outside the
// vocabulary are ignored.
type Vectorizer struct {
	Vocab []string
	index map[string]int
}

// NewVectorizer fits a vocabulary over the given documents. The vocabulary
// is sorted so column order is reproducible.
func NewVectorizer(docs [][]string) *Vectorizer {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, tok := range doc {
			seen[tok] = struct{}{}
		}
	}
	vocab := make([]string, 0, len(seen))
	for term := range seen {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}
	return &Vectorizer{Vocab: vocab, index: index}
}

// Counts builds the raw document-term count matrix, one row per document
// and one column per vocabulary term.
func (v *Vectorizer) Counts(docs [][]string) *mat.Dense {
	m := mat.NewDense(len(docs), len(v.Vocab), nil)
	for i, doc := range docs {
		for _, tok := range doc {
			if j, ok := v.index[tok]; ok {
				m.Set(i, j, m.At(i, j)+1)
			}
		}
	}
	return m
}

// TFIDF weights the count matrix with smoothed inverse document frequency:
// weight = tf * (ln((1+N)/(1+df)) + 1), where tf is the raw term count in
// the document, N the number of documents and df the number of documents
// containing the term. The smoothing keeps terms present in every document
// at a positive weight.
func (v *Vectorizer) TFIDF(docs [][]string) *mat.Dense {
	counts := v.Counts(docs)
	rows, cols := counts.Dims()

	df := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if counts.At(i, j) > 0 {
				df[j]++
			}
		}
	}

	weighted := mat.NewDense(rows, cols, nil)
	n := float64(rows)
	for j := 0; j < cols; j++ {
		idf := logIDF(n, df[j])
		for i := 0; i < rows; i++ {
			weighted.Set(i, j, counts.At(i, j)*idf)
		}
	}
	return weighted
}

func logIDF(n, df float64) float64 {
	return math.Log((1+n)/(1+df)) + 1
}

// TopTerms returns the n highest-weighted terms of one matrix row, ties
// broken alphabetically.
func (v *Vectorizer) TopTerms(m *mat.Dense, doc, n int) []TermWeight {
	_, cols := m.Dims()
	weights := make([]TermWeight, 0, cols)
	for j := 0; j < cols; j++ {
		if w := m.At(doc, j); w > 0 {
			weights = append(weights, TermWeight{Term: v.Vocab[j], Weight: w})
		}
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Weight != weights[j].Weight {
			return weights[i].Weight > weights[j].Weight
		}
		return weights[i].Term < weights[j].Term
	})
	if n > 0 && n < len(weights) {
		weights = weights[:n]
	}
	return weights
}
