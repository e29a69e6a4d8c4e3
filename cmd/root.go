package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dsgirard/tweetlab/internal/config"
	"github.com/dsgirard/tweetlab/internal/corpus"
	"github.com/dsgirard/tweetlab/internal/text"
)

const version = "1.0.0"

var (
	cfgPath string
	cfg     *config.Config
)

var rootCMD = &cobra.Command{
	Use:          "tweetlab",
	Short:        "preprocess and explore tweet corpora",
	Long:         `tweetlab cleans tweet corpora (retweet filtering, deduplication, text normalization, tokenization) and explores them with frequency tables, tf-idf, bar charts, word clouds and co-occurrence networks.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

func init() {
	rootCMD.PersistentFlags().StringVar(&cfgPath, "config", "./config.toml", "path to the TOML config file")
}

func newTokenizer(c *config.Config) (*text.Tokenizer, error) {
	var opts []text.TokenizerOption
	if c.Tokenizer.StopwordLang != "" {
		opts = append(opts, text.WithStopwords(c.Tokenizer.StopwordLang))
	}
	if c.Tokenizer.MinTokenLen > 0 {
		opts = append(opts, text.WithMinLength(c.Tokenizer.MinTokenLen))
	}
	if c.Tokenizer.DropSentinels {
		opts = append(opts, text.WithoutSentinels())
	}
	// Lemmatization wins when both are configured, mirroring the tokenizer.
	if c.Tokenizer.Lemmatize {
		lem, err := text.NewEnglishLemmatizer()
		if err != nil {
			return nil, err
		}
		opts = append(opts, text.WithLemmatization(lem))
	} else if c.Tokenizer.Stemming {
		opts = append(opts, text.WithStemming("english"))
	}
	return text.NewTokenizer(opts...), nil
}

func loadTweets(c *config.Config) ([]corpus.Tweet, error) {
	switch c.Input.Format {
	case "json":
		return corpus.LoadJSON(c.Input.Path)
	case "csv", "":
		return corpus.LoadCSV(c.Input.Path, c.Input.TextColumn, c.Input.HasHeader)
	default:
		return nil, fmt.Errorf("unknown input format %q", c.Input.Format)
	}
}

func runPipeline(c *config.Config) ([]corpus.Document, error) {
	tweets, err := loadTweets(c)
	if err != nil {
		return nil, err
	}
	tok, err := newTokenizer(c)
	if err != nil {
		return nil, err
	}
	p := &corpus.Pipeline{Tokenizer: tok, KeepRetweets: c.KeepRetweets}
	return p.Run(tweets), nil
}

func outputPath(c *config.Config, name string) (string, error) {
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return filepath.Join(c.OutputDir, name), nil
}
