package util

import "strconv"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination clamps raw limit/offset query values. A non-positive limit
// falls back to DefaultLimit, a negative offset to 0.
func Pagination(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
