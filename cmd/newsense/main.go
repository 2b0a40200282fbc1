// newsense is a company news sentiment analyzer with spoken summaries.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shrishail07/newsense/api"
	"github.com/shrishail07/newsense/internal/analysis/topics"
	"github.com/shrishail07/newsense/internal/config"
	"github.com/shrishail07/newsense/internal/feed"
	"github.com/shrishail07/newsense/internal/logging"
	"github.com/shrishail07/newsense/internal/report"
	"github.com/shrishail07/newsense/internal/speech"
	"github.com/shrishail07/newsense/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "newsense",
	Short: "Company news sentiment analysis with audio summaries",
	Long: `newsense fetches recent news headlines for a company, classifies each
headline's sentiment, tags topical keywords, aggregates the results into a
report, and narrates a Hindi summary of that report as MP3 audio.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		logging.Init(level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(narrateCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newGenerator builds the pipeline from the loaded config.
func newGenerator() *report.Generator {
	fetcher := feed.NewFetcherWithOptions(
		cfg.Feed.URLTemplate,
		time.Duration(cfg.Feed.TimeoutSec)*time.Second,
		cfg.Feed.MaxArticles,
	)
	return report.NewGenerator(fetcher)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsense %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [company]",
	Short: "Fetch and analyze recent news sentiment for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		company := args[0]

		rep, err := newGenerator().Generate(cmd.Context(), company)
		if err != nil {
			if errors.Is(err, report.ErrNoArticles) {
				fmt.Printf("No news found for %q. Try another company.\n", company)
				return nil
			}
			return err
		}

		fmt.Printf("📰 News Sentiment: %s\n", rep.Company)
		fmt.Printf("   Articles:  %d\n", rep.TotalArticles)
		fmt.Printf("   Positive:  %d\n", rep.Distribution[models.SentimentPositive])
		fmt.Printf("   Negative:  %d\n", rep.Distribution[models.SentimentNegative])
		fmt.Printf("   Neutral:   %d\n", rep.Distribution[models.SentimentNeutral])
		fmt.Printf("   Positive ratio: %s\n\n", rep.PositiveRatio)

		for i, a := range rep.Articles {
			fmt.Printf("%d. %s (%s)\n", i+1, a.Title, a.Sentiment)
			fmt.Printf("   %s\n", a.Summary)
			fmt.Printf("   Source: %s | Topics: %s\n", a.Source, strings.Join(a.Topics, ", "))
			fmt.Printf("   %s\n", a.Link)
		}
		return nil
	},
}

// --- Narrate Command ---

var narrateCmd = &cobra.Command{
	Use:   "narrate [company]",
	Short: "Generate the localized summary and save it as MP3 audio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		company := args[0]
		outDir, _ := cmd.Flags().GetString("out")

		rep, err := newGenerator().Generate(cmd.Context(), company)
		if err != nil {
			if errors.Is(err, report.ErrNoArticles) {
				fmt.Println(report.Summarize(nil))
				return nil
			}
			return err
		}

		summary := report.Summarize(rep)
		fmt.Println(summary)

		narrator := speech.NewNarrator(cfg.Speech.Language)
		audio, err := narrator.Synthesize(summary)
		if err != nil {
			// The textual summary above is still valid; only audio failed.
			return fmt.Errorf("narration failed: %w", err)
		}

		path := filepath.Join(outDir, speech.AudioFileName(company))
		if err := os.WriteFile(path, audio, 0o644); err != nil {
			return fmt.Errorf("write audio file: %w", err)
		}
		fmt.Printf("\n🔊 Audio summary saved to %s\n", path)
		return nil
	},
}

func init() {
	narrateCmd.Flags().String("out", ".", "directory for the generated MP3 file")
}

// --- Topics Command ---

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Print the topic keyword table",
	Run: func(cmd *cobra.Command, args []string) {
		for _, topic := range topics.Table() {
			fmt.Printf("%-20s %s\n", topic.Label, strings.Join(topic.Keywords, ", "))
		}
	},
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		fmt.Printf("🚀 newsense API listening on %s\n", addr)
		return api.NewServer(cfg).ListenAndServe(addr)
	},
}
