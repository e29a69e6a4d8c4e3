package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCooccurrence(t *testing.T) {
	docs := [][]string{
		{"climate", "change", "policy"},
		{"climate", "change"},
		{"policy", "climate"},
	}
	c := NewCooccurrence(docs, []string{"climate", "change", "policy"})

	assert.Equal(t, 2, c.Count("climate", "change"))
	assert.Equal(t, 2, c.Count("change", "climate")) // symmetric
	assert.Equal(t, 2, c.Count("climate", "policy"))
	assert.Equal(t, 1, c.Count("change", "policy"))
	assert.Equal(t, 3, c.Count("climate", "climate")) // document frequency
	assert.Equal(t, 0, c.Count("climate", "unknown"))
}

func TestCooccurrenceCountsPresenceOncePerDoc(t *testing.T) {
	docs := [][]string{
		{"rain", "rain", "wind", "rain"},
	}
	c := NewCooccurrence(docs, []string{"rain", "wind"})
	assert.Equal(t, 1, c.Count("rain", "wind"))
	assert.Equal(t, 1, c.Count("rain", "rain"))
}

func TestCooccurrencePairs(t *testing.T) {
	docs := [][]string{
		{"climate", "change", "policy"},
		{"climate", "change"},
		{"policy", "climate"},
	}
	c := NewCooccurrence(docs, []string{"climate", "change", "policy"})

	pairs := c.Pairs(2)
	assert.Equal(t, []Pair{
		{A: "change", B: "climate", Count: 2},
		{A: "climate", B: "policy", Count: 2},
	}, pairs)

	all := c.Pairs(1)
	assert.Len(t, all, 3)
	assert.Equal(t, 2, all[0].Count)
}
