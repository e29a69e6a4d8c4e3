package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Sentinel tokens substituted for content classes whose structural presence
// matters more than their value.
const (
	UserToken   = "<user>"
	NumberToken = "<number>"
)

var (
	urlRe        = regexp.MustCompile(`http\S*`)
	usernameRe   = regexp.MustCompile(`@\w+`)
	hashtagRe    = regexp.MustCompile(`#\w+`)
	punctRe      = regexp.MustCompile(`[^\w\s<>-]`)
	digitsRe     = regexp.MustCompile(`[0-9]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Rule is a single rewrite step of the normalization pipeline.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Rules is the ordered rewrite sequence applied by Normalize. The order is
// part of the contract: URLs are stripped before slashes become spaces,
// mentions are substituted before punctuation is removed, and hashtags are
// dropped before digit runs are substituted. The punctuation rule keeps
// "<" and ">" so the sentinel placed by the mention rule survives.
var Rules = []Rule{
	{"ascii", func(s string) string {
		out, _, err := transform.String(nonASCII, s)
		if err != nil {
			return s
		}
		return out
	}},
	{"urls", func(s string) string { return urlRe.ReplaceAllString(s, "") }},
	{"lowercase", strings.ToLower},
	{"mentions", func(s string) string { return usernameRe.ReplaceAllString(s, UserToken) }},
	{"hashtags", func(s string) string { return hashtagRe.ReplaceAllString(s, "") }},
	{"slashes", func(s string) string { return strings.ReplaceAll(s, "/", " ") }},
	{"possessives", func(s string) string { return strings.ReplaceAll(s, "'s", "") }},
	{"punctuation", func(s string) string { return punctRe.ReplaceAllString(s, "") }},
	{"numbers", func(s string) string { return digitsRe.ReplaceAllString(s, NumberToken) }},
	{"hyphens", func(s string) string { return strings.ReplaceAll(s, "-", " ") }},
	{"linebreaks", lineBreaks.Replace},
	{"whitespace", func(s string) string { return whitespaceRe.ReplaceAllString(s, " ") }},
	{"trim", strings.TrimSpace},
}

// Normalize maps a raw tweet to its cleaned form by running every rule in
// order. It is a pure function: ASCII-only output, no URLs, lowercase,
// mentions replaced with <user>, hashtags dropped, digit runs replaced with
// <number>, punctuation removed, hyphenated compounds split, whitespace
// collapsed to single spaces and trimmed.
func Normalize(raw string) string {
	s := raw
	for _, r := range Rules {
		s = r.Apply(s)
	}
	return s
}
