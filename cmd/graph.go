package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsgirard/tweetlab/internal/analysis"
	"github.com/dsgirard/tweetlab/internal/corpus"
	"github.com/dsgirard/tweetlab/internal/visual"
)

var graphCMD = &cobra.Command{
	Use:   "graph",
	Short: "export the co-occurrence network of the top terms as Graphviz DOT",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := runPipeline(cfg)
		if err != nil {
			return err
		}

		tokenDocs := corpus.TokenDocs(docs)
		counts := analysis.Frequencies(tokenDocs)
		top := analysis.Top(counts, cfg.TopTerms)
		vocab := make([]string, len(top))
		for i, tc := range top {
			vocab[i] = tc.Term
		}
		if len(vocab) == 0 {
			return fmt.Errorf("empty vocabulary after tokenization")
		}

		cooc := analysis.NewCooccurrence(tokenDocs, vocab)
		pairs := cooc.Pairs(cfg.MinPairCount)

		path, err := outputPath(cfg, "cooccurrence.dot")
		if err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := visual.Network("cooccurrence", pairs, f); err != nil {
			return err
		}
		fmt.Printf("Wrote %d co-occurrence edges to %s\n", len(pairs), path)
		return nil
	},
}

func init() {
	rootCMD.AddCommand(graphCMD)
}
