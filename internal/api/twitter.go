// Package api fetches tweet corpora from the Twitter search API.
package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"

	"github.com/dsgirard/tweetlab/internal/corpus"
)

const (
	retryAttempts = 3
	retryDelay    = 500 * time.Millisecond
)

// retryTransport retries transient failures (transport errors and 5xx
// responses) a bounded number of times before giving up.
type retryTransport struct {
	next  http.RoundTripper
	delay time.Duration
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	for i := 0; i < retryAttempts; i++ {
		if i > 0 {
			time.Sleep(t.delay)
		}
		resp, err = t.next.RoundTrip(req)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}
		if err == nil && i < retryAttempts-1 {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	}
	return resp, err
}

// Credentials holds the OAuth1 values the search API needs.
type Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// CredentialsFromEnv reads the four TWITTER_* environment variables.
func CredentialsFromEnv() (Credentials, error) {
	c := Credentials{
		ConsumerKey:       os.Getenv("TWITTER_CONSUMER_KEY"),
		ConsumerSecret:    os.Getenv("TWITTER_CONSUMER_SECRET"),
		AccessToken:       os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessTokenSecret: os.Getenv("TWITTER_ACCESS_TOKEN_SECRET"),
	}
	if c.ConsumerKey == "" || c.ConsumerSecret == "" || c.AccessToken == "" || c.AccessTokenSecret == "" {
		return Credentials{}, fmt.Errorf("missing twitter credentials: set TWITTER_CONSUMER_KEY, TWITTER_CONSUMER_SECRET, TWITTER_ACCESS_TOKEN and TWITTER_ACCESS_TOKEN_SECRET")
	}
	return c, nil
}

// NewClient builds an authenticated Twitter API client with bounded retry
// on transient failures.
func NewClient(c Credentials) *twitter.Client {
	config := oauth1.NewConfig(c.ConsumerKey, c.ConsumerSecret)
	token := oauth1.NewToken(c.AccessToken, c.AccessTokenSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	httpClient.Transport = &retryTransport{next: httpClient.Transport, delay: retryDelay}
	return twitter.NewClient(httpClient)
}

// SearchTweets fetches up to count recent tweets matching the query in the
// given language (empty for any).
func SearchTweets(client *twitter.Client, query, lang string, count int) ([]corpus.Tweet, error) {
	params := &twitter.SearchTweetParams{
		Query:     query,
		Lang:      lang,
		Count:     count,
		TweetMode: "extended",
	}
	search, _, err := client.Search.Tweets(params)
	if err != nil {
		return nil, fmt.Errorf("search tweets %q: %w", query, err)
	}

	tweets := make([]corpus.Tweet, 0, len(search.Statuses))
	for _, s := range search.Statuses {
		text := s.FullText
		if text == "" {
			text = s.Text
		}
		t := corpus.Tweet{ID: s.ID, Text: text}
		if s.User != nil {
			t.User = s.User.ScreenName
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}
