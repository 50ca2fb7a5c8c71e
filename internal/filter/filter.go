// Package filter implements in-memory predicate filtering for the admin
// and dashboard list views. Collections are treated as read-mostly
// snapshots; every function here is pure and order-preserving.
package filter

import (
	"strings"
	"time"
)

// All is the sentinel filter value that matches every item.
const All = "all"

type Predicate[T any] func(T) bool

// Apply returns the stable subsequence of items satisfying every
// predicate. The input is never mutated and relative order is preserved.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		ok := true
		for _, pred := range preds {
			if !pred(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// Text matches when the query appears, case-insensitively, in any of the
// configured fields. An empty query matches everything.
func Text[T any](query string, fields ...func(T) string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), query) {
				return true
			}
		}
		return false
	}
}

// Equals matches items whose field equals value exactly. An empty value or
// the All sentinel matches everything.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	return func(item T) bool {
		if value == "" || value == All {
			return true
		}
		return field(item) == value
	}
}

// IntRange matches items whose field falls within [min, max]. A nil bound
// is open.
func IntRange[T any](min, max *int, field func(T) int) Predicate[T] {
	return func(item T) bool {
		v := field(item)
		if min != nil && v < *min {
			return false
		}
		if max != nil && v > *max {
			return false
		}
		return true
	}
}

// TimeRange matches items whose field falls within [from, to]. Zero bounds
// are open.
func TimeRange[T any](from, to time.Time, field func(T) time.Time) Predicate[T] {
	return func(item T) bool {
		v := field(item)
		if !from.IsZero() && v.Before(from) {
			return false
		}
		if !to.IsZero() && v.After(to) {
			return false
		}
		return true
	}
}
