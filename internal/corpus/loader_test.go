package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "tweets.csv",
		"id,text\n"+
			"101,\"hello, world\"\n"+
			"102,second tweet\n"+
			"bad-row\n")

	tweets, err := LoadCSV(path, 1, true)
	require.NoError(t, err)

	assert.Len(t, tweets, 2)
	assert.Equal(t, Tweet{ID: 101, Text: "hello, world"}, tweets[0])
	assert.Equal(t, Tweet{ID: 102, Text: "second tweet"}, tweets[1])
}

func TestLoadCSVWithoutHeader(t *testing.T) {
	path := writeTemp(t, "tweets.csv", "first tweet\nsecond tweet\n")

	tweets, err := LoadCSV(path, 0, false)
	require.NoError(t, err)

	assert.Len(t, tweets, 2)
	assert.Equal(t, int64(1), tweets[0].ID) // row number fallback
	assert.Equal(t, "first tweet", tweets[0].Text)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), 0, false)
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "tweets.json",
		`[{"id": 7, "user": "alice", "text": "hi there"}, {"id": 8, "text": "bye"}]`)

	tweets, err := LoadJSON(path)
	require.NoError(t, err)

	assert.Equal(t, []Tweet{
		{ID: 7, User: "alice", Text: "hi there"},
		{ID: 8, Text: "bye"},
	}, tweets)
}

func TestLoadJSONMalformed(t *testing.T) {
	path := writeTemp(t, "tweets.json", "{not json")
	_, err := LoadJSON(path)
	assert.Error(t, err)
}
