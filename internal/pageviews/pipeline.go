package pageviews

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
)

const defaultTopN = 20

// Pipeline orchestrates collection, top-set selection, densification and
// summary for one date range.
type Pipeline struct {
	Source Source
	TopN   int
	Pause  time.Duration
}

// NewPipeline constructs a new Pipeline.
func NewPipeline(source Source, topN int) (*Pipeline, error) {
	if source == nil {
		return nil, errors.New("pageviews: pipeline requires a source")
	}
	if topN <= 0 {
		topN = defaultTopN
	}
	return &Pipeline{Source: source, TopN: topN}, nil
}

// Run executes the end-to-end flow for [start, end] inclusive and returns
// the densified top-set series plus the summary statistics.
func (p *Pipeline) Run(ctx context.Context, start, end time.Time) (*Result, error) {
	runID := uuid.NewString()
	log.Printf("pipeline %s: collecting %s..%s",
		runID, start.Format("20060102"), end.Format("20060102"))

	collector := &Collector{Source: p.Source, Pause: p.Pause}
	raw, err := collector.Collect(ctx, start, end)
	if err != nil {
		return nil, err
	}

	top := SelectTop(raw, p.TopN)
	restricted := Restrict(raw, top)

	stats, err := Summarize(raw, restricted)
	if err != nil {
		return nil, err
	}

	series := Densify(restricted, top, start, end)

	log.Printf("pipeline %s: %d records, %d top articles, %d distinct articles",
		runID, len(raw), len(top), stats.UniqueArticles)

	return &Result{
		RunID:       runID,
		Start:       dateOnly(start),
		End:         dateOnly(end),
		TopArticles: top,
		Series:      series,
		Stats:       stats,
		Breakdown:   ArticleBreakdown(restricted, top),
	}, nil
}
