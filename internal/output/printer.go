package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"wikitop/internal/pageviews"
)

// PrintError writes a fatal diagnostic to stderr.
func PrintError(msg string) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %s\n", msg)
}

// Summary prints the run headline followed by the per-article table.
func Summary(w io.Writer, result *pageviews.Result, chartPath string) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintf(w, "Top %d articles, %s..%s\n",
		len(result.TopArticles),
		result.Start.Format("2006-01-02"), result.End.Format("2006-01-02"))

	fmt.Fprintf(w, "Mean views (per-article means): %.2f\n", result.Stats.MeanViews)
	fmt.Fprintf(w, "Max views: %d\n", result.Stats.MaxViews)
	fmt.Fprintf(w, "Distinct articles observed: %d\n\n", result.Stats.UniqueArticles)

	SummaryTable(w, result.Breakdown)

	fmt.Fprintf(w, "\nChart written to %s\n", chartPath)
}
