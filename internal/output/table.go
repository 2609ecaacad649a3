package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"wikitop/internal/pageviews"
)

// newTable builds a borderless left-aligned table in the house style.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

// SummaryTable renders the per-article breakdown in top-set rank order.
func SummaryTable(w io.Writer, breakdown []pageviews.ArticleSummary) {
	table := newTable(w)
	table.Header([]string{"Article", "Days", "Mean Views", "Latest Views"})

	rows := make([][]string, 0, len(breakdown))
	for _, row := range breakdown {
		rows = append(rows, []string{
			row.Article,
			fmt.Sprintf("%d", row.Days),
			fmt.Sprintf("%.2f", row.Mean),
			fmt.Sprintf("%d", row.Latest),
		})
	}
	table.Bulk(rows)
	table.Render()
}
