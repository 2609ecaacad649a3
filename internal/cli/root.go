// Package cli contains the command surface for the wikitop analyzer.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wikitop/internal/chart"
	"wikitop/internal/config"
	"wikitop/internal/output"
	"wikitop/internal/pageviews"
	"wikitop/internal/wikimedia"
)

var rootCmd = &cobra.Command{
	Use:   "wikitop <start> <end>",
	Short: "Wikipedia top-articles view analyzer",
	Long: `wikitop fetches daily top-viewed article statistics from the Wikimedia
pageviews API for a date range, builds a gap-filled per-article time series
for the top articles and renders a log-scale chart.

Dates are 8-digit YYYYMMDD strings:

  wikitop 20240101 20240131
  wikitop 20240101 20240107 --top 10 --output january.png`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().String("project", "", "wiki project (default en.wikipedia)")
	rootCmd.Flags().Int("top", 0, "number of top articles to keep (default 20)")
	rootCmd.Flags().StringP("output", "o", "", "chart output path (default top_articles.png)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	start, end, err := parseRange(args[0], args[1])
	if err != nil {
		return err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if project, _ := cmd.Flags().GetString("project"); project != "" {
		cfg.Project = project
	}
	if top, _ := cmd.Flags().GetInt("top"); top > 0 {
		cfg.TopN = top
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputPath = out
	}

	client := wikimedia.NewClient(cfg.Project, cfg.Access,
		wikimedia.WithUserAgent(cfg.UserAgent),
		wikimedia.WithRetryPolicy(cfg.Retries, cfg.RetryDelay),
	)

	pipeline, err := pageviews.NewPipeline(client, cfg.TopN)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), start, end)
	switch {
	case errors.Is(err, pageviews.ErrNoData):
		return fmt.Errorf("no usable data for %s..%s: every day in the range failed", args[0], args[1])
	case errors.Is(err, pageviews.ErrNoViews):
		return fmt.Errorf("no view observations for the selected top articles in %s..%s", args[0], args[1])
	case err != nil:
		return err
	}

	if err := chart.Render(result, cfg.OutputPath); err != nil {
		return err
	}

	output.Summary(cmd.OutOrStdout(), result, cfg.OutputPath)
	return nil
}

// parseRange validates the two 8-digit date arguments before anything
// touches the network.
func parseRange(startArg, endArg string) (time.Time, time.Time, error) {
	start, err := time.Parse("20060102", startArg)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: expected YYYYMMDD", startArg)
	}
	end, err := time.Parse("20060102", endArg)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: expected YYYYMMDD", endArg)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end date must not be before start date")
	}
	return start, end, nil
}
