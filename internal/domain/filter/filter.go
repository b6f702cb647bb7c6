// Package filter provides order-preserving predicate filtering over record
// collections. All predicates narrow: a record must satisfy the text match
// AND every categorical match to be kept.
package filter

import "strings"

// All is the sentinel categorical value that matches every record.
const All = "all"

// Predicate reports whether a record passes one filter criterion.
type Predicate[T any] func(record T) bool

// Text builds a case-insensitive substring predicate over a configurable set
// of field accessors. A record matches if ANY field contains the term. An
// empty (or all-whitespace) term matches every record.
func Text[T any](term string, fields ...func(T) string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return func(T) bool { return true }
	}

	return func(record T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(record)), needle) {
				return true
			}
		}

		return false
	}
}

// Category builds a case-insensitive exact-match predicate over a single
// field. The sentinel value "all" (or empty) passes every record through.
func Category[T any](value string, field func(T) string) Predicate[T] {
	want := strings.ToLower(strings.TrimSpace(value))
	if want == "" || want == All {
		return func(T) bool { return true }
	}

	return func(record T) bool {
		return strings.ToLower(field(record)) == want
	}
}

// Apply returns the records satisfying every predicate, preserving the
// original relative order. It never mutates the input slice.
func Apply[T any](records []T, predicates ...Predicate[T]) []T {
	matched := make([]T, 0, len(records))

outer:
	for _, record := range records {
		for _, predicate := range predicates {
			if !predicate(record) {
				continue outer
			}
		}
		matched = append(matched, record)
	}

	return matched
}
