package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dsgirard/tweetlab/internal/api"
)

var fetchCMD = &cobra.Command{
	Use:   "fetch",
	Short: "fetch tweets from the search API into the input file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Twitter.Query == "" {
			return fmt.Errorf("no twitter query configured")
		}

		creds, err := api.CredentialsFromEnv()
		if err != nil {
			return err
		}
		client := api.NewClient(creds)

		tweets, err := api.SearchTweets(client, cfg.Twitter.Query, cfg.Twitter.Language, cfg.Twitter.Count)
		if err != nil {
			return err
		}

		if dir := filepath.Dir(cfg.Input.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create input dir: %w", err)
			}
		}
		f, err := os.Create(cfg.Input.Path)
		if err != nil {
			return err
		}
		defer f.Close()

		w := csv.NewWriter(f)
		if err := w.Write([]string{"id", "text"}); err != nil {
			return err
		}
		for _, t := range tweets {
			if err := w.Write([]string{strconv.FormatInt(t.ID, 10), t.Text}); err != nil {
				return err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}

		fmt.Printf("Fetched %d tweets for %q into %s\n", len(tweets), cfg.Twitter.Query, cfg.Input.Path)
		return nil
	},
}

func init() {
	rootCMD.AddCommand(fetchCMD)
}
