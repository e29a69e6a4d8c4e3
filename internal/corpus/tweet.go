// Package corpus loads tweet collections and runs them through the
// cleaning pipeline: retweet filtering, deduplication, normalization and
// tokenization.
package corpus

import "regexp"

// Tweet is one raw corpus entry.
type Tweet struct {
	ID   int64  `json:"id"`
	User string `json:"user"`
	Text string `json:"text"`
}

var retweetRe = regexp.MustCompile(`^RT\b`)

// IsRetweet reports whether the tweet is a plain retweet of someone else's
// text. Retweets duplicate their source and are filtered before analysis.
func (t Tweet) IsRetweet() bool {
	return retweetRe.MatchString(t.Text)
}
