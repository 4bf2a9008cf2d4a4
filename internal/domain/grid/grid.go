package grid

import (
	"sort"
	"strings"
)

// All is the sentinel filter value meaning "no restriction" for a field.
const All = "all"

// Record exposes named fields as strings. Every report record type implements
// this instead of being indexed dynamically, so the engine stays typed while
// remaining shared across all report views.
type Record interface {
	Field(name string) (string, bool)
}

// Option is one selectable value for a filter control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Buckets collects the sorted distinct non-empty values of each named field.
// Fields absent from every record yield an empty bucket. The All sentinel is
// implicit and never stored.
func Buckets[T Record](records []T, fields ...string) map[string][]Option {
	buckets := make(map[string][]Option, len(fields))
	for _, field := range fields {
		seen := make(map[string]struct{})
		for _, rec := range records {
			value, ok := rec.Field(field)
			if !ok || value == "" {
				continue
			}
			seen[value] = struct{}{}
		}
		values := make([]string, 0, len(seen))
		for value := range seen {
			values = append(values, value)
		}
		sort.Strings(values)
		options := make([]Option, 0, len(values))
		for _, value := range values {
			options = append(options, Option{Value: value, Label: value})
		}
		buckets[field] = options
	}
	return buckets
}

// Query is one grid state: free-text search, active categorical filters and an
// optional sort. A zero Query matches everything in input order.
type Query struct {
	Search       string
	SearchFields []string
	Filters      map[string]string
	SortKey      string
	SortDesc     bool
}

// Apply returns the subset of records matching q, ordered by the sort key.
// Search matches when any search field contains the term case-insensitively;
// filters require exact equality and all must hold. Sorting is a stable
// lexicographic comparison; records missing the sort field order last in both
// directions. The input slice is never mutated.
func Apply[T Record](records []T, q Query) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matchesSearch(rec, q) && matchesFilters(rec, q.Filters) {
			out = append(out, rec)
		}
	}

	if q.SortKey != "" {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j], q.SortKey, q.SortDesc)
		})
	}
	return out
}

func matchesSearch[T Record](rec T, q Query) bool {
	if q.Search == "" {
		return true
	}
	// A term with nothing to match against matches no record.
	if len(q.SearchFields) == 0 {
		return false
	}
	term := strings.ToLower(q.Search)
	for _, field := range q.SearchFields {
		value, ok := rec.Field(field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}

func matchesFilters[T Record](rec T, filters map[string]string) bool {
	for key, want := range filters {
		if want == "" || want == All {
			continue
		}
		value, _ := rec.Field(key)
		if value != want {
			return false
		}
	}
	return true
}

func less[T Record](a, b T, key string, desc bool) bool {
	av, aok := a.Field(key)
	bv, bok := b.Field(key)
	aMissing := !aok || av == ""
	bMissing := !bok || bv == ""

	// Missing values always sink to the end, whatever the direction.
	switch {
	case aMissing && bMissing:
		return false
	case aMissing:
		return false
	case bMissing:
		return true
	}

	if desc {
		return av > bv
	}
	return av < bv
}
