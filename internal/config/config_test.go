package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
top_terms = 10
font_file = "fonts/Roboto-Regular.ttf"

[input]
path = "data/tweets.csv"
text_column = 2

[tokenizer]
stemming = true

[clean_file]
path = "out/corpus.txt"
max_size = 50
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/tweets.csv", c.Input.Path)
	assert.Equal(t, 2, c.Input.TextColumn)
	assert.Equal(t, "csv", c.Input.Format) // default kept
	assert.True(t, c.Tokenizer.Stemming)
	assert.Equal(t, "en", c.Tokenizer.StopwordLang) // default kept
	assert.Equal(t, 10, c.TopTerms)
	assert.Equal(t, 2, c.MinPairCount) // default kept
	assert.Equal(t, "out/corpus.txt", c.CleanFile.Path)
	assert.Equal(t, 50, c.CleanFile.MaxSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
