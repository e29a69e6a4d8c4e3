package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetweet(t *testing.T) {
	assert.True(t, Tweet{Text: "RT @alice: great news"}.IsRetweet())
	assert.True(t, Tweet{Text: "RT: great news"}.IsRetweet())
	assert.False(t, Tweet{Text: "great news, RT if you agree"}.IsRetweet())
	assert.False(t, Tweet{Text: "RTs are not endorsements"}.IsRetweet())
	assert.False(t, Tweet{Text: ""}.IsRetweet())
}
