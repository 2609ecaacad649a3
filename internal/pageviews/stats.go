package pageviews

import "errors"

// ErrNoViews reports that the top-set restriction left no observations to
// summarize. Distinct from ErrNoData: days were collected, but none of them
// carried views for the selected articles.
var ErrNoViews = errors.New("pageviews: no view observations for the selected articles")

// Summarize computes the headline statistics over the raw top-set records.
//
// The mean is a mean of per-article means, so every article weighs equally
// no matter how many days it was observed. Max is taken over the raw, not
// forward-filled, observations. The distinct-article count covers the full
// raw series, not just the top set.
func Summarize(full RawSeries, restricted RawSeries) (SummaryStats, error) {
	if len(restricted) == 0 {
		return SummaryStats{}, ErrNoViews
	}

	totals := make(map[string]int64)
	counts := make(map[string]int)
	var order []string
	var maxViews int64

	for _, rec := range restricted {
		if _, ok := totals[rec.Article]; !ok {
			order = append(order, rec.Article)
		}
		totals[rec.Article] += rec.Views
		counts[rec.Article]++
		if rec.Views > maxViews {
			maxViews = rec.Views
		}
	}

	var sumOfMeans float64
	for _, article := range order {
		sumOfMeans += float64(totals[article]) / float64(counts[article])
	}

	distinct := make(map[string]struct{})
	for _, rec := range full {
		distinct[rec.Article] = struct{}{}
	}

	return SummaryStats{
		MeanViews:      sumOfMeans / float64(len(order)),
		MaxViews:       maxViews,
		UniqueArticles: len(distinct),
	}, nil
}

// ArticleBreakdown computes the per-article rows for the summary table, in
// top-set rank order. Latest is the chronologically last observation, the
// same value the top-set ranking used.
func ArticleBreakdown(restricted RawSeries, top []string) []ArticleSummary {
	totals := make(map[string]int64)
	counts := make(map[string]int)
	latest := make(map[string]int64)

	for _, rec := range restricted {
		totals[rec.Article] += rec.Views
		counts[rec.Article]++
		latest[rec.Article] = rec.Views
	}

	out := make([]ArticleSummary, 0, len(top))
	for _, article := range top {
		if counts[article] == 0 {
			continue
		}
		out = append(out, ArticleSummary{
			Article: article,
			Days:    counts[article],
			Mean:    float64(totals[article]) / float64(counts[article]),
			Latest:  latest[article],
		})
	}
	return out
}
