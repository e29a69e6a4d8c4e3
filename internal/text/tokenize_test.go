package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeDefault(t *testing.T) {
	tok := NewTokenizer()
	assert.Equal(t, []string{"check", "this", "out"}, tok.Tokenize("check this out"))
	assert.Empty(t, tok.Tokenize(""))
}

func TestTokenizeStopwords(t *testing.T) {
	tok := NewTokenizer(WithStopwords("en"))
	assert.Equal(t, []string{"quantum", "turbine"}, tok.Tokenize("this is a quantum turbine"))
}

func TestTokenizeStemming(t *testing.T) {
	tok := NewTokenizer(WithStemming("english"))
	assert.Equal(t, []string{"cat", "run"}, tok.Tokenize("cats running"))
}

func TestTokenizeLemmatization(t *testing.T) {
	lem, err := NewEnglishLemmatizer()
	require.NoError(t, err)
	tok := NewTokenizer(WithLemmatization(lem))
	assert.Equal(t, []string{"cat"}, tok.Tokenize("cats"))
}

func TestTokenizeMinLength(t *testing.T) {
	tok := NewTokenizer(WithMinLength(3))
	assert.Equal(t, []string{"fun"}, tok.Tokenize("go is ok fun"))
}

func TestTokenizeSentinels(t *testing.T) {
	t.Run("kept by default", func(t *testing.T) {
		tok := NewTokenizer(WithStopwords("en"), WithMinLength(3))
		got := tok.Tokenize("<user> scored <number> goals")
		assert.Equal(t, []string{"<user>", "scored", "<number>", "goals"}, got)
	})
	t.Run("dropped on request", func(t *testing.T) {
		tok := NewTokenizer(WithoutSentinels())
		got := tok.Tokenize("<user> scored <number> goals")
		assert.Equal(t, []string{"scored", "goals"}, got)
	})
}
