package services

import (
	"fmt"
	"strings"

	"sustainshare-api/ports"
)

// filter returns the items for which keep reports true. The result is never
// nil so that empty lists encode as [].
func filter[T any](items []T, keep func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ports.ErrValidation, fmt.Sprintf(format, args...))
}

// mergeString returns next unless it is blank, in which case current is kept.
func mergeString(current, next string) string {
	if strings.TrimSpace(next) == "" {
		return current
	}
	return next
}
