package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"wikitop/internal/pageviews"
)

// ErrNothingToPlot reports that every point of every series was missing or
// zero, leaving nothing a log scale can draw.
var ErrNothingToPlot = errors.New("chart: no plottable points in any series")

// Render draws one line per top article on a log-scale Y axis and writes the
// chart as a PNG to path. Missing and non-positive points are skipped: a log
// scale has no place for them. If no series contributes a single drawable
// point, Render fails with ErrNothingToPlot instead of saving an empty plot.
func Render(result *pageviews.Result, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top articles wiki views (Mean: %.2f, Max: %d, Articles: %d)",
		result.Stats.MeanViews, result.Stats.MaxViews, result.Stats.UniqueArticles)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Views (log scale)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true
	p.Legend.Left = true

	drawn := 0
	for i, series := range result.Series {
		pts := make(plotter.XYs, 0, len(series.Points))
		for _, point := range series.Points {
			if point.Missing || point.Views <= 0 {
				continue
			}
			pts = append(pts, plotter.XY{
				X: float64(point.Date.Unix()),
				Y: float64(point.Views),
			})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart: build line for %s: %w", series.Article, err)
		}
		line.LineStyle.Width = vg.Points(2)
		line.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(series.Article, line)
		drawn++
	}

	// Save would panic computing log ticks over an empty value range.
	if drawn == 0 {
		return ErrNothingToPlot
	}

	if err := p.Save(14*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}
	return nil
}
