package wikimedia

import "strings"

const (
	apiBaseURL  = "https://wikimedia.org/api/rest_v1/metrics"
	topEndpoint = "pageviews/top"
)

// topPath composes the request path for one day of top-article statistics.
// Pure string composition, no validation: the caller supplies a 4-digit year
// and zero-padded month/day, and a malformed triple simply produces a path
// the API itself will reject.
func topPath(project, access, year, month, day string) string {
	return strings.Join([]string{topEndpoint, project, access, year, month, day}, "/")
}
