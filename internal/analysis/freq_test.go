package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencies(t *testing.T) {
	docs := [][]string{
		{"climate", "change", "climate"},
		{"change", "policy"},
	}
	counts := Frequencies(docs)
	assert.Equal(t, map[string]int{"climate": 2, "change": 2, "policy": 1}, counts)
}

func TestFrequenciesEmpty(t *testing.T) {
	assert.Empty(t, Frequencies(nil))
	assert.Empty(t, Frequencies([][]string{{}}))
}

func TestTop(t *testing.T) {
	counts := map[string]int{"beta": 3, "alpha": 3, "gamma": 1, "delta": 2}

	top := Top(counts, 3)
	assert.Equal(t, []TermCount{
		{Term: "alpha", Count: 3},
		{Term: "beta", Count: 3},
		{Term: "delta", Count: 2},
	}, top)

	// n larger than the vocabulary returns everything.
	assert.Len(t, Top(counts, 10), 4)
	// n <= 0 returns everything.
	assert.Len(t, Top(counts, 0), 4)
}
