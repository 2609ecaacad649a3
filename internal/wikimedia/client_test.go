package wikimedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{"items":[{"articles":[
	{"article":"Main_Page","views":4000000,"rank":1},
	{"article":"Go_(programming_language)","views":120000,"rank":2}
]}]}`

func testDate(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
}

func TestTopArticlesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pageviews/top/en.wikipedia/all-access/2024/01/02", r.URL.Path)
		assert.Equal(t, "wikitop-analyzer", r.Header.Get("User-Agent"))
		w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	client := NewClient("en.wikipedia", "all-access", WithBaseURL(srv.URL))

	articles, ok := client.TopArticles(context.Background(), testDate(t))
	require.True(t, ok)
	require.Len(t, articles, 2)
	assert.Equal(t, "Main_Page", articles[0].Article)
	assert.Equal(t, int64(4000000), articles[0].Views)
}

func TestTopArticlesRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	client := NewClient("en.wikipedia", "all-access",
		WithBaseURL(srv.URL), WithRetryPolicy(3, 0))

	articles, ok := client.TopArticles(context.Background(), testDate(t))
	require.True(t, ok)
	assert.Equal(t, 3, attempts)
	assert.Len(t, articles, 2)
}

func TestTopArticlesExhaustsAttempts(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient("en.wikipedia", "all-access",
		WithBaseURL(srv.URL), WithRetryPolicy(3, 0))

	articles, ok := client.TopArticles(context.Background(), testDate(t))
	assert.False(t, ok)
	assert.Nil(t, articles)
	assert.Equal(t, 3, attempts)
}

func TestTopArticlesMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := NewClient("en.wikipedia", "all-access",
		WithBaseURL(srv.URL), WithRetryPolicy(2, 0))

	_, ok := client.TopArticles(context.Background(), testDate(t))
	assert.False(t, ok)
}

func TestTopArticlesMissingItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detail":"not found"}`))
	}))
	defer srv.Close()

	client := NewClient("en.wikipedia", "all-access",
		WithBaseURL(srv.URL), WithRetryPolicy(2, 0))

	_, ok := client.TopArticles(context.Background(), testDate(t))
	assert.False(t, ok)
}
