package pageviews

import "time"

// DailyRecord is one article's observed view count for one calendar day.
type DailyRecord struct {
	Date    time.Time
	Article string
	Views   int64
}

// RawSeries is the date-ascending accumulation of every usable daily record
// collected over the requested range. It is written once during collection
// and read-only afterwards.
type RawSeries []DailyRecord

// SeriesPoint is a single day within a densified article series. Missing
// marks the leading days before the article's first observation; such days
// carry no value and are skipped by consumers.
type SeriesPoint struct {
	Date    time.Time
	Views   int64
	Missing bool
}

// ArticleSeries is a densified daily series for one article, covering every
// day of the requested range in order.
type ArticleSeries struct {
	Article string
	Points  []SeriesPoint
}

// SummaryStats aggregates the headline numbers shown in the chart title.
type SummaryStats struct {
	MeanViews      float64 // mean of per-article means over the top set
	MaxViews       int64   // max over raw top-set observations
	UniqueArticles int     // distinct articles across the full raw series
}

// ArticleSummary is a per-article breakdown over the raw top-set
// observations, used for the CLI summary table.
type ArticleSummary struct {
	Article string
	Days    int
	Mean    float64
	Latest  int64
}

// Result is everything a pipeline run hands to the rendering collaborators.
type Result struct {
	RunID       string
	Start       time.Time
	End         time.Time
	TopArticles []string
	Series      []ArticleSeries
	Stats       SummaryStats
	Breakdown   []ArticleSummary
}
