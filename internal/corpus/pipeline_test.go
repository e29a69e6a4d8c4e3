package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsgirard/tweetlab/internal/text"
)

func TestPipelineRun(t *testing.T) {
	tweets := []Tweet{
		{ID: 1, Text: "Great news! http://a.example/1"},
		{ID: 2, Text: "RT @alice: Great news!"},
		{ID: 3, Text: "Great news! http://b.example/2"}, // same text, different URL
		{ID: 4, Text: "http://c.example/3"},             // empty after cleaning
		{ID: 5, Text: "Something else entirely"},
	}

	p := &Pipeline{Tokenizer: text.NewTokenizer()}
	docs := p.Run(tweets)

	assert.Len(t, docs, 2)
	assert.Equal(t, int64(1), docs[0].Tweet.ID)
	assert.Equal(t, "great news", docs[0].Clean)
	assert.Equal(t, []string{"great", "news"}, docs[0].Tokens)
	assert.Equal(t, int64(5), docs[1].Tweet.ID)
}

func TestPipelineKeepRetweets(t *testing.T) {
	tweets := []Tweet{
		{ID: 1, Text: "RT @alice: keep me"},
	}
	p := &Pipeline{KeepRetweets: true}
	docs := p.Run(tweets)

	assert.Len(t, docs, 1)
	assert.Equal(t, "rt <user> keep me", docs[0].Clean)
}

func TestPipelineNilTokenizer(t *testing.T) {
	p := &Pipeline{}
	docs := p.Run([]Tweet{{ID: 1, Text: "plain words"}})
	assert.Len(t, docs, 1)
	assert.Equal(t, []string{"plain", "words"}, docs[0].Tokens)
}
