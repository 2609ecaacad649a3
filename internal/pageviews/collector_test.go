package pageviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wikitop/internal/wikimedia"
)

// stubSource serves canned per-day payloads keyed by YYYYMMDD; days not in
// the map are reported absent.
type stubSource struct {
	days  map[string][]wikimedia.ArticleViews
	calls []string
}

func (s *stubSource) TopArticles(ctx context.Context, date time.Time) ([]wikimedia.ArticleViews, bool) {
	key := date.Format("20060102")
	s.calls = append(s.calls, key)
	articles, ok := s.days[key]
	return articles, ok
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("20060102", value)
	require.NoError(t, err)
	return d
}

func TestCollectTagsRecordsWithTheirDay(t *testing.T) {
	source := &stubSource{days: map[string][]wikimedia.ArticleViews{
		"20240101": {{Article: "A", Views: 10}, {Article: "B", Views: 5}},
		"20240102": {{Article: "A", Views: 12}},
	}}
	collector := &Collector{Source: source, Pause: time.Millisecond}

	raw, err := collector.Collect(context.Background(), day(t, "20240101"), day(t, "20240102"))
	require.NoError(t, err)
	require.Len(t, raw, 3)

	assert.Equal(t, []string{"20240101", "20240102"}, source.calls)
	assert.Equal(t, day(t, "20240101"), raw[0].Date)
	assert.Equal(t, "A", raw[0].Article)
	assert.Equal(t, day(t, "20240102"), raw[2].Date)
}

func TestCollectSkipsAbsentDays(t *testing.T) {
	source := &stubSource{days: map[string][]wikimedia.ArticleViews{
		"20240101": {{Article: "A", Views: 10}},
		"20240103": {{Article: "A", Views: 30}},
	}}
	collector := &Collector{Source: source, Pause: time.Millisecond}

	raw, err := collector.Collect(context.Background(), day(t, "20240101"), day(t, "20240103"))
	require.NoError(t, err)

	// day 2 is absent and skipped, but still attempted
	assert.Len(t, source.calls, 3)
	require.Len(t, raw, 2)
	assert.Equal(t, int64(10), raw[0].Views)
	assert.Equal(t, int64(30), raw[1].Views)
}

func TestCollectFailsWhenEveryDayIsAbsent(t *testing.T) {
	source := &stubSource{days: map[string][]wikimedia.ArticleViews{}}
	collector := &Collector{Source: source, Pause: time.Millisecond}

	raw, err := collector.Collect(context.Background(), day(t, "20240101"), day(t, "20240103"))
	assert.ErrorIs(t, err, ErrNoData)
	assert.Nil(t, raw)
	assert.Len(t, source.calls, 3)
}

func TestCollectDoesNotPauseAfterFinalDay(t *testing.T) {
	source := &stubSource{days: map[string][]wikimedia.ArticleViews{
		"20240101": {{Article: "A", Views: 10}},
	}}
	collector := &Collector{Source: source, Pause: 300 * time.Millisecond}

	started := time.Now()
	_, err := collector.Collect(context.Background(), day(t, "20240101"), day(t, "20240101"))
	require.NoError(t, err)

	// single-day range has no between-day gap, so no pause at all
	assert.Less(t, time.Since(started), 200*time.Millisecond)
}

func TestCollectHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &stubSource{days: map[string][]wikimedia.ArticleViews{
		"20240101": {{Article: "A", Views: 10}},
	}}
	collector := &Collector{Source: source, Pause: time.Millisecond}

	_, err := collector.Collect(ctx, day(t, "20240101"), day(t, "20240103"))
	assert.ErrorIs(t, err, context.Canceled)
}
