package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any list call can request.
	MaxLimit = 100
)

// Params holds page/limit inputs for list endpoints.
type Params struct {
	Page  int
	Limit int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage treats anything below one as the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Query renders the params as URL query values understood by the API.
func (p Params) Query() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(NormalizePage(p.Page)))
	values.Set("limit", strconv.Itoa(NormalizeLimit(p.Limit)))
	return values
}
