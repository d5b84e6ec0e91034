package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/opennews/gnewsdecode"
)

var (
	proxyURL    string
	timeoutSecs int
	intervalMS  int
	tryLegacy   bool
	markdownOut bool
	outputDir   string
	debugMode   bool
)

var debugEnabled bool

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gnewsdecode [flags] URL...",
	Short: "Decode Google News redirect URLs into publisher URLs",
	Long: `Resolves obfuscated news.google.com article links back to the original
publisher URL via Google's internal batchexecute RPC. Decoded URLs are
printed one per line; --markdown additionally fetches each article and
writes it as a markdown file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return err
		}

		decoder := newDecoder(settings)
		ctx := context.Background()

		failed := 0
		for _, sourceURL := range args {
			if !decodeAndReport(ctx, decoder, settings, sourceURL) {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d URLs failed to decode", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&proxyURL, "proxy", "", "Proxy URL for all requests (http, https or socks5)")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 0, "Per-request timeout in seconds")
	rootCmd.PersistentFlags().IntVar(&intervalMS, "interval", 0, "Pause in milliseconds after each successful decode")
	rootCmd.PersistentFlags().BoolVar(&tryLegacy, "legacy", false, "Try the offline base64 decoder before the RPC pipeline")
	rootCmd.PersistentFlags().BoolVar(&markdownOut, "markdown", false, "Fetch each decoded article and save it as markdown")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "Directory for markdown output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// resolveSettings layers flag values over the optional settings file and the
// environment, flags winning.
func resolveSettings(cmd *cobra.Command) (*Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	if settings.Proxy == "" {
		settings.Proxy = os.Getenv("GNEWSDECODE_PROXY")
	}
	if cmd.Flags().Changed("proxy") {
		settings.Proxy = proxyURL
	}
	if cmd.Flags().Changed("timeout") {
		settings.TimeoutSeconds = timeoutSecs
	}
	if cmd.Flags().Changed("interval") {
		settings.IntervalMS = intervalMS
	}
	if cmd.Flags().Changed("output") {
		settings.OutputDirectory = outputDir
	}

	debugEnabled = debugMode
	return settings, nil
}

func newDecoder(settings *Settings) *gnewsdecode.Decoder {
	opts := []gnewsdecode.Option{
		gnewsdecode.WithTimeout(time.Duration(settings.TimeoutSeconds) * time.Second),
	}
	if settings.Proxy != "" {
		opts = append(opts, gnewsdecode.WithProxy(settings.Proxy))
	}
	if settings.UserAgent != "" {
		opts = append(opts, gnewsdecode.WithUserAgent(settings.UserAgent))
	}
	return gnewsdecode.NewDecoder(opts...)
}

// decodeAndReport decodes one URL, prints the result and optionally writes
// the article as markdown. Returns false if the URL could not be decoded.
func decodeAndReport(ctx context.Context, decoder *gnewsdecode.Decoder, settings *Settings, sourceURL string) bool {
	interval := time.Duration(settings.IntervalMS) * time.Millisecond

	if tryLegacy {
		if decodedURL, err := gnewsdecode.DecodeLegacy(sourceURL); err == nil {
			emitDecoded(settings, decodedURL)
			return true
		} else {
			debugLog("legacy decode failed for %s: %v", sourceURL, err)
		}
	}

	result := decoder.Decode(ctx, sourceURL, interval)
	if !result.OK {
		log.Printf("decode failed for %s: %s", sourceURL, result.Message)
		if result.Diagnostic != nil {
			debugLog("status=%d body=%s", result.Diagnostic.HTTPStatus, result.Diagnostic.ResponseBody)
			debugLog("payload=%s", result.Diagnostic.RequestPayload)
		}
		return false
	}

	emitDecoded(settings, result.DecodedURL)
	return true
}

func emitDecoded(settings *Settings, decodedURL string) {
	fmt.Println(decodedURL)

	if !markdownOut {
		return
	}

	client := &http.Client{Timeout: time.Duration(settings.TimeoutSeconds) * time.Second}
	markdown, err := fetchArticleMarkdown(client, decodedURL)
	if err != nil {
		log.Printf("fetching article failed: %v", err)
		return
	}

	filename, err := saveArticle(settings.OutputDirectory, decodedURL, markdown)
	if err != nil {
		log.Printf("saving article failed: %v", err)
		return
	}
	log.Printf("  → Saved to: %s", filename)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
