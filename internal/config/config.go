// Package config loads the toolkit configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type FileConfig struct {
	Path    string `toml:"path"`
	MaxSize int    `toml:"max_size"` // megabytes
}

type InputConfig struct {
	Path       string `toml:"path"`
	Format     string `toml:"format"` // "csv" or "json"
	TextColumn int    `toml:"text_column"`
	HasHeader  bool   `toml:"has_header"`
}

type TokenizerConfig struct {
	StopwordLang  string `toml:"stopword_lang"` // ISO code, empty disables stopword removal
	Stemming      bool   `toml:"stemming"`
	Lemmatize     bool   `toml:"lemmatize"`
	MinTokenLen   int    `toml:"min_token_len"`
	DropSentinels bool   `toml:"drop_sentinels"`
}

type TwitterConfig struct {
	Query    string `toml:"query"`
	Language string `toml:"language"`
	Count    int    `toml:"count"`
}

type Config struct {
	Input        InputConfig     `toml:"input"`
	Tokenizer    TokenizerConfig `toml:"tokenizer"`
	Twitter      TwitterConfig   `toml:"twitter"`
	TopTerms     int             `toml:"top_terms"`
	MinPairCount int             `toml:"min_pair_count"`
	OutputDir    string          `toml:"output_dir"`
	FontFile     string          `toml:"font_file"`
	KeepRetweets bool            `toml:"keep_retweets"`
	CleanFile    FileConfig      `toml:"clean_file"`
}

// Load reads the configuration file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	c := &Config{
		Input:        InputConfig{Format: "csv", HasHeader: true, TextColumn: 1},
		Tokenizer:    TokenizerConfig{StopwordLang: "en", MinTokenLen: 2},
		Twitter:      TwitterConfig{Language: "en", Count: 100},
		TopTerms:     25,
		MinPairCount: 2,
		OutputDir:    "out",
		CleanFile:    FileConfig{Path: "out/clean_tweets.txt", MaxSize: 100},
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}
