package pageviews

import (
	"sort"
	"time"
)

// SelectTop ranks articles by their most recent observed view count and
// returns up to n article names in rank order. The ranking key for an
// article is the views value of its chronologically last record, so an
// article seen only on the final day still ranks on that single value.
// Ties keep the order in which articles were first encountered in the
// accumulated records.
func SelectTop(raw RawSeries, n int) []string {
	if n <= 0 || len(raw) == 0 {
		return nil
	}

	chrono := make(RawSeries, len(raw))
	copy(chrono, raw)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].Date.Before(chrono[j].Date)
	})

	type candidate struct {
		article string
		views   int64
	}

	pos := make(map[string]int, len(chrono))
	var candidates []candidate
	for _, rec := range chrono {
		idx, ok := pos[rec.Article]
		if !ok {
			pos[rec.Article] = len(candidates)
			candidates = append(candidates, candidate{article: rec.Article, views: rec.Views})
			continue
		}
		candidates[idx].views = rec.Views
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].views > candidates[j].views
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	top := make([]string, 0, n)
	for _, c := range candidates[:n] {
		top = append(top, c.article)
	}
	return top
}

// Restrict filters the raw series down to records belonging to the given
// article set, preserving order.
func Restrict(raw RawSeries, articles []string) RawSeries {
	keep := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		keep[a] = struct{}{}
	}

	var out RawSeries
	for _, rec := range raw {
		if _, ok := keep[rec.Article]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// Densify expands the restricted raw series into one series per selected
// article with exactly one point per day of [start, end] inclusive. Days
// without an observation inherit the most recent earlier value; days before
// an article's first observation stay missing. The last known value
// continues flat, it is never extrapolated.
func Densify(raw RawSeries, top []string, start, end time.Time) []ArticleSeries {
	observed := make(map[string]map[time.Time]int64)
	for _, rec := range raw {
		day := dateOnly(rec.Date)
		if observed[rec.Article] == nil {
			observed[rec.Article] = make(map[time.Time]int64)
		}
		observed[rec.Article][day] = rec.Views
	}

	first, last := dateOnly(start), dateOnly(end)

	series := make([]ArticleSeries, 0, len(top))
	for _, article := range top {
		days := observed[article]

		var points []SeriesPoint
		var lastViews int64
		haveValue := false
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if v, ok := days[day]; ok {
				lastViews = v
				haveValue = true
			}
			points = append(points, SeriesPoint{Date: day, Views: lastViews, Missing: !haveValue})
		}

		series = append(series, ArticleSeries{Article: article, Points: points})
	}
	return series
}
