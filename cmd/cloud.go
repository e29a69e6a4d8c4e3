package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsgirard/tweetlab/internal/analysis"
	"github.com/dsgirard/tweetlab/internal/corpus"
	"github.com/dsgirard/tweetlab/internal/visual"
)

// The cloud stays readable around a hundred words.
const cloudTermLimit = 100

var cloudCMD = &cobra.Command{
	Use:   "cloud",
	Short: "render a word cloud of the most frequent terms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := runPipeline(cfg)
		if err != nil {
			return err
		}

		counts := analysis.Frequencies(corpus.TokenDocs(docs))
		top := analysis.Top(counts, cloudTermLimit)
		cloudCounts := make(map[string]int, len(top))
		for _, tc := range top {
			cloudCounts[tc.Term] = tc.Count
		}

		path, err := outputPath(cfg, "wordcloud.png")
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := visual.WordCloud(cloudCounts, cfg.FontFile, f); err != nil {
			return err
		}
		fmt.Printf("Wrote word cloud to %s\n", path)
		return nil
	},
}

func init() {
	rootCMD.AddCommand(cloudCMD)
}
