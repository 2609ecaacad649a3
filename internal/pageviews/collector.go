package pageviews

import (
	"context"
	"errors"
	"log"
	"time"

	"wikitop/internal/wikimedia"
)

// ErrNoData reports that no day in the requested range produced a usable
// payload.
var ErrNoData = errors.New("pageviews: no data collected for the requested date range")

// Source provides one day of top-article observations. The boolean result is
// false when the day is absent, meaning every fetch attempt failed; an absent
// day is recoverable and simply skipped.
type Source interface {
	TopArticles(ctx context.Context, date time.Time) ([]wikimedia.ArticleViews, bool)
}

const defaultPause = 100 * time.Millisecond

// Collector walks a date range one day at a time and accumulates records
// tagged with their day.
type Collector struct {
	Source Source
	Pause  time.Duration
}

// Collect fetches every day in [start, end] inclusive, in ascending order.
// Days whose payload is absent are logged and skipped. A range that yields
// no usable day at all is fatal.
func (c *Collector) Collect(ctx context.Context, start, end time.Time) (RawSeries, error) {
	pause := c.Pause
	if pause <= 0 {
		pause = defaultPause
	}

	var raw RawSeries
	usableDays := 0
	last := dateOnly(end)

	for day := dateOnly(start); !day.After(last); day = day.AddDate(0, 0, 1) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		articles, ok := c.Source.TopArticles(ctx, day)
		if !ok {
			log.Printf("collector: skipping %s - no valid data", day.Format("20060102"))
		} else {
			for _, a := range articles {
				raw = append(raw, DailyRecord{Date: day, Article: a.Article, Views: a.Views})
			}
			usableDays++
		}

		// задержка для соблюдения лимитов API; после последнего дня не нужна
		if day.Before(last) {
			time.Sleep(pause)
		}
	}

	if usableDays == 0 {
		return nil, ErrNoData
	}

	return raw, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
