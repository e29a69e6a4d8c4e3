package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dsgirard/tweetlab/internal/corpus"
)

var cleanCMD = &cobra.Command{
	Use:   "clean",
	Short: "normalize the corpus and write cleaned tweets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := runPipeline(cfg)
		if err != nil {
			return err
		}

		if dir := filepath.Dir(cfg.CleanFile.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		w := corpus.NewWriter(cfg.CleanFile.Path, cfg.CleanFile.MaxSize)
		defer w.Close()

		for _, d := range docs {
			if err := w.WriteDocument(d); err != nil {
				return fmt.Errorf("write cleaned tweet %d: %w", d.Tweet.ID, err)
			}
		}
		fmt.Printf("Wrote %d cleaned tweets to %s\n", len(docs), cfg.CleanFile.Path)
		return nil
	},
}

func init() {
	rootCMD.AddCommand(cleanCMD)
}
