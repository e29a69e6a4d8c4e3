package corpus

import (
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dsgirard/tweetlab/internal/text"
)

// Prometheus metrics
var (
	tweetsRead = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "corpus_tweets_read_total",
		Help: "Total number of tweets fed into the cleaning pipeline",
	})
	retweetsFiltered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "corpus_retweets_filtered_total",
		Help: "Total number of retweets dropped before cleaning",
	})
	duplicatesFiltered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "corpus_duplicates_filtered_total",
		Help: "Total number of tweets dropped as duplicates of earlier ones",
	})
	emptyFiltered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "corpus_empty_filtered_total",
		Help: "Total number of tweets left empty by cleaning (URL-only etc.)",
	})
	normalizeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "corpus_normalize_duration_seconds",
		Help:    "Duration of one text normalization",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 8),
	})
)

var logger *zap.SugaredLogger

func init() {
	prometheus.MustRegister(tweetsRead, retweetsFiltered, duplicatesFiltered, emptyFiltered, normalizeDuration)

	l, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	logger = l.Sugar()
}

// Document is one tweet after cleaning and tokenization.
type Document struct {
	Tweet  Tweet
	Clean  string
	Tokens []string
}

// Pipeline runs tweets through retweet filtering, deduplication,
// normalization and tokenization, in that order. Duplicates are detected on
// the sha1 of the cleaned text, so the same content shared with different
// URLs or mentions collapses together.
type Pipeline struct {
	Tokenizer    *text.Tokenizer
	KeepRetweets bool
}

// Run processes the tweets sequentially and returns the surviving
// documents in input order.
func (p *Pipeline) Run(tweets []Tweet) []Document {
	tokenizer := p.Tokenizer
	if tokenizer == nil {
		tokenizer = text.NewTokenizer()
	}

	seen := make(map[[sha1.Size]byte]struct{}, len(tweets))
	docs := make([]Document, 0, len(tweets))
	for _, t := range tweets {
		tweetsRead.Inc()

		if !p.KeepRetweets && t.IsRetweet() {
			retweetsFiltered.Inc()
			continue
		}

		start := time.Now()
		clean := text.Normalize(t.Text)
		normalizeDuration.Observe(time.Since(start).Seconds())

		if clean == "" {
			emptyFiltered.Inc()
			continue
		}

		key := sha1.Sum([]byte(clean))
		if _, dup := seen[key]; dup {
			duplicatesFiltered.Inc()
			continue
		}
		seen[key] = struct{}{}

		docs = append(docs, Document{
			Tweet:  t,
			Clean:  clean,
			Tokens: tokenizer.Tokenize(clean),
		})
	}

	logger.Infow("Corpus pipeline complete", "tweets_in", len(tweets), "documents_out", len(docs))
	return docs
}

// TokenDocs projects the token slices out of the documents, the shape the
// analysis package consumes.
func TokenDocs(docs []Document) [][]string {
	out := make([][]string, len(docs))
	for i, d := range docs {
		out[i] = d.Tokens
	}
	return out
}
