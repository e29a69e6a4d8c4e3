package text

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball"
)

// Tokenizer splits cleaned text into tokens and applies the configured
// filters and transforms. The zero value splits on spaces and keeps
// everything, sentinels included.
type Tokenizer struct {
	stopLang      string
	stemLang      string
	lemmatizer    *golem.Lemmatizer
	minLen        int
	dropSentinels bool
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithStopwords drops tokens that are stopwords for the given ISO language
// code (e.g. "en").
func WithStopwords(langCode string) TokenizerOption {
	return func(t *Tokenizer) {
		t.stopLang = langCode
	}
}

// WithStemming reduces tokens to their snowball stem for the given language
// name (e.g. "english"). Ignored for tokens the stemmer rejects.
func WithStemming(language string) TokenizerOption {
	return func(t *Tokenizer) {
		t.stemLang = language
	}
}

// WithLemmatization reduces tokens to their dictionary lemma. Takes
// precedence over stemming when both are configured.
func WithLemmatization(l *golem.Lemmatizer) TokenizerOption {
	return func(t *Tokenizer) {
		t.lemmatizer = l
	}
}

// WithMinLength drops tokens shorter than n characters.
func WithMinLength(n int) TokenizerOption {
	return func(t *Tokenizer) {
		t.minLen = n
	}
}

// WithoutSentinels drops the <user> and <number> sentinels instead of
// passing them through.
func WithoutSentinels() TokenizerOption {
	return func(t *Tokenizer) {
		t.dropSentinels = true
	}
}

// NewTokenizer builds a Tokenizer from the given options.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewEnglishLemmatizer loads the bundled English lemma dictionary.
func NewEnglishLemmatizer() (*golem.Lemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return l, nil
}

// Tokenize splits a cleaned string into tokens. Sentinels pass through (or
// are dropped) before any other filter so the length and stopword checks
// never touch them.
func (t *Tokenizer) Tokenize(clean string) []string {
	fields := strings.Fields(clean)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if tok == UserToken || tok == NumberToken {
			if !t.dropSentinels {
				tokens = append(tokens, tok)
			}
			continue
		}
		if t.minLen > 0 && len(tok) < t.minLen {
			continue
		}
		if t.stopLang != "" && isStopword(tok, t.stopLang) {
			continue
		}
		if t.lemmatizer != nil {
			tokens = append(tokens, t.lemmatizer.Lemma(tok))
			continue
		}
		if t.stemLang != "" {
			if stemmed, err := snowball.Stem(tok, t.stemLang, false); err == nil {
				tokens = append(tokens, stemmed)
				continue
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// isStopword asks the stopwords corpus whether anything of the token
// survives stopword cleaning on its own.
func isStopword(tok, langCode string) bool {
	return strings.TrimSpace(stopwords.CleanString(tok, langCode, false)) == ""
}
