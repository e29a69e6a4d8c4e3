package analysis

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Pair is one co-occurring term pair with the number of documents both
// terms appear in. A is lexicographically smaller than B.
type Pair struct {
	A, B  string
	Count int
}

// Cooccurrence records, for a fixed vocabulary, how many documents contain
// each unordered pair of terms. Presence-based: a pair counts once per
// document no matter how often either term repeats. The diagonal holds the
// document frequency of each term.
type Cooccurrence struct {
	Terms []string
	index map[string]int
	m     *mat.SymDense
}

// NewCooccurrence counts pair co-presence over the given documents,
// restricted to the vocabulary terms.
func NewCooccurrence(docs [][]string, vocab []string) *Cooccurrence {
	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}
	c := &Cooccurrence{
		Terms: vocab,
		index: index,
		m:     mat.NewSymDense(len(vocab), nil),
	}
	for _, doc := range docs {
		present := make([]int, 0, len(doc))
		seen := make(map[int]struct{}, len(doc))
		for _, tok := range doc {
			if i, ok := index[tok]; ok {
				if _, dup := seen[i]; !dup {
					seen[i] = struct{}{}
					present = append(present, i)
				}
			}
		}
		sort.Ints(present)
		for x := 0; x < len(present); x++ {
			for y := x; y < len(present); y++ {
				i, j := present[x], present[y]
				c.m.SetSym(i, j, c.m.At(i, j)+1)
			}
		}
	}
	return c
}

// Count returns the number of documents containing both terms, or the
// document frequency when a == b. Unknown terms count zero.
func (c *Cooccurrence) Count(a, b string) int {
	i, ok := c.index[a]
	if !ok {
		return 0
	}
	j, ok := c.index[b]
	if !ok {
		return 0
	}
	return int(c.m.At(i, j))
}

// Pairs lists every distinct pair seen in at least minCount documents,
// sorted by descending count, then lexicographically.
func (c *Cooccurrence) Pairs(minCount int) []Pair {
	if minCount < 1 {
		minCount = 1
	}
	var pairs []Pair
	for i := 0; i < len(c.Terms); i++ {
		for j := i + 1; j < len(c.Terms); j++ {
			if n := int(c.m.At(i, j)); n >= minCount {
				a, b := c.Terms[i], c.Terms[j]
				if b < a {
					a, b = b, a
				}
				pairs = append(pairs, Pair{A: a, B: b, Count: n})
			}
		}
	}
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].Count != pairs[y].Count {
			return pairs[x].Count > pairs[y].Count
		}
		if pairs[x].A != pairs[y].A {
			return pairs[x].A < pairs[y].A
		}
		return pairs[x].B < pairs[y].B
	})
	return pairs
}
