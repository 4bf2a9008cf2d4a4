package grid

import (
	"reflect"
	"testing"
)

type fakeRecord map[string]string

func (f fakeRecord) Field(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

func staff() []fakeRecord {
	return []fakeRecord{
		{"id": "EMP-001", "name": "Alice Wanjiru", "department": "Engineering"},
		{"id": "EMP-002", "name": "Brian Otieno", "department": "Finance"},
		{"id": "EMP-003", "name": "Carol Achieng", "department": "Engineering"},
		{"id": "EMP-004", "name": "David Kamau", "department": ""},
		{"id": "EMP-005", "name": "Alice Njeri", "department": "HR"},
	}
}

func TestBucketsDistinctSorted(t *testing.T) {
	buckets := Buckets(staff(), "department", "branch")

	want := []Option{
		{Value: "Engineering", Label: "Engineering"},
		{Value: "Finance", Label: "Finance"},
		{Value: "HR", Label: "HR"},
	}
	if !reflect.DeepEqual(buckets["department"], want) {
		t.Fatalf("department bucket = %v, want %v", buckets["department"], want)
	}
	if len(buckets["branch"]) != 0 {
		t.Fatalf("expected empty bucket for absent field, got %v", buckets["branch"])
	}
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	q := Query{Search: "ALICE", SearchFields: []string{"name", "id"}}
	got := Apply(staff(), q)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, rec := range got {
		if rec["name"] != "Alice Wanjiru" && rec["name"] != "Alice Njeri" {
			t.Fatalf("unexpected match %v", rec)
		}
	}
}

func TestApplySearchWithoutSearchFields(t *testing.T) {
	got := Apply(staff(), Query{Search: "alice"})
	if len(got) != 0 {
		t.Fatalf("a search term with no searchable fields should match nothing, got %v", ids(got))
	}

	got = Apply(staff(), Query{SearchFields: nil})
	if len(got) != len(staff()) {
		t.Fatalf("an empty term should still match everything, got %d records", len(got))
	}
}

func TestApplyFiltersExactConjunction(t *testing.T) {
	records := staff()

	got := Apply(records, Query{Filters: map[string]string{"department": "Engineering"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 engineering records, got %d", len(got))
	}

	got = Apply(records, Query{Filters: map[string]string{
		"department": "Engineering",
		"id":         "EMP-003",
	}})
	if len(got) != 1 || got[0]["name"] != "Carol Achieng" {
		t.Fatalf("conjunction filter returned %v", got)
	}

	got = Apply(records, Query{Filters: map[string]string{"department": All}})
	if len(got) != len(records) {
		t.Fatalf("sentinel filter should match everything, got %d of %d", len(got), len(records))
	}

	got = Apply(records, Query{Filters: map[string]string{"department": "Legal"}})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestApplyNeverMutatesInput(t *testing.T) {
	records := staff()
	snapshot := staff()

	Apply(records, Query{SortKey: "name", SortDesc: true, Filters: map[string]string{"department": "Engineering"}})

	if !reflect.DeepEqual(records, snapshot) {
		t.Fatalf("input slice mutated: %v", records)
	}
}

func TestApplySortMissingValuesLast(t *testing.T) {
	records := staff()

	asc := Apply(records, Query{SortKey: "department"})
	if asc[len(asc)-1]["id"] != "EMP-004" {
		t.Fatalf("ascending: record missing sort field should be last, got order %v", ids(asc))
	}

	desc := Apply(records, Query{SortKey: "department", SortDesc: true})
	if desc[len(desc)-1]["id"] != "EMP-004" {
		t.Fatalf("descending: record missing sort field should still be last, got order %v", ids(desc))
	}
	if desc[0]["department"] != "HR" {
		t.Fatalf("descending order wrong: %v", ids(desc))
	}
}

func TestApplySortIdempotent(t *testing.T) {
	q := Query{SortKey: "name"}
	once := Apply(staff(), q)
	twice := Apply(once, q)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("re-sorting a sorted result changed order: %v vs %v", ids(once), ids(twice))
	}
}

func TestApplySearchAndFilterCompose(t *testing.T) {
	q := Query{
		Search:       "alice",
		SearchFields: []string{"name"},
		Filters:      map[string]string{"department": "HR"},
		SortKey:      "id",
	}
	got := Apply(staff(), q)
	if len(got) != 1 || got[0]["id"] != "EMP-005" {
		t.Fatalf("composed query returned %v", got)
	}
}

func ids(records []fakeRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec["id"])
	}
	return out
}
