package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsgirard/tweetlab/internal/analysis"
	"github.com/dsgirard/tweetlab/internal/corpus"
	"github.com/dsgirard/tweetlab/internal/visual"
)

const tfidfDocLimit = 10

var statsCMD = &cobra.Command{
	Use:   "stats",
	Short: "print top terms and per-document tf-idf, render the bar chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := runPipeline(cfg)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return fmt.Errorf("no documents left after cleaning")
		}

		tokenDocs := corpus.TokenDocs(docs)
		counts := analysis.Frequencies(tokenDocs)
		top := analysis.Top(counts, cfg.TopTerms)

		fmt.Printf("%-24s %s\n", "TERM", "COUNT")
		for _, tc := range top {
			fmt.Printf("%-24s %d\n", tc.Term, tc.Count)
		}

		v := analysis.NewVectorizer(tokenDocs)
		if len(v.Vocab) == 0 {
			return fmt.Errorf("empty vocabulary after tokenization")
		}
		weights := v.TFIDF(tokenDocs)
		show := len(docs)
		if show > tfidfDocLimit {
			show = tfidfDocLimit
		}
		fmt.Println("\nTop tf-idf terms per document:")
		for i := 0; i < show; i++ {
			terms := v.TopTerms(weights, i, 5)
			parts := make([]string, len(terms))
			for j, tw := range terms {
				parts[j] = fmt.Sprintf("%s (%.2f)", tw.Term, tw.Weight)
			}
			fmt.Printf("#%d %q: %s\n", docs[i].Tweet.ID, truncate(docs[i].Clean, 40), strings.Join(parts, ", "))
		}

		path, err := outputPath(cfg, "top_terms.png")
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := visual.BarChart("Top terms", top, f); err != nil {
			return err
		}
		fmt.Printf("\nWrote bar chart to %s\n", path)
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func init() {
	rootCMD.AddCommand(statsCMD)
}
