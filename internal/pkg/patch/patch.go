package patch

import "time"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceTimePtr keeps fallback when ptr is nil. Used for optional timestamps
// such as closedAt that stay absent until explicitly set.
func CoalesceTimePtr(ptr *time.Time, fallback *time.Time) *time.Time {
	if ptr != nil {
		t := *ptr
		return &t
	}
	return fallback
}
