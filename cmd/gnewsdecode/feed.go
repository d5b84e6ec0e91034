package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/cobra"
)

var feedLimit int

var feedCmd = &cobra.Command{
	Use:   "feed RSS_URL",
	Short: "Decode every article link in a Google News RSS feed",
	Long: `Fetches a Google News RSS feed (for example
https://news.google.com/rss/search?q=golang&hl=en-US&gl=US&ceid=US:en) and
decodes each item's redirect link, one at a time. Use --interval to pace the
requests.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()

		parser := gofeed.NewParser()
		if settings.UserAgent != "" {
			parser.UserAgent = settings.UserAgent
		}

		fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(settings.TimeoutSeconds)*time.Second)
		defer cancel()

		feed, err := parser.ParseURLWithContext(args[0], fetchCtx)
		if err != nil {
			return fmt.Errorf("fetching feed %s: %w", args[0], err)
		}

		items := feed.Items
		if feedLimit > 0 && len(items) > feedLimit {
			items = items[:feedLimit]
		}

		decoder := newDecoder(settings)

		failed := 0
		for _, item := range items {
			debugLog("decoding %q", item.Title)
			if !decodeAndReport(ctx, decoder, settings, item.Link) {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d feed items failed to decode", failed, len(items))
		}
		return nil
	},
}

func init() {
	feedCmd.Flags().IntVar(&feedLimit, "limit", 0, "Decode at most this many feed items (0 = all)")
	rootCmd.AddCommand(feedCmd)
}
