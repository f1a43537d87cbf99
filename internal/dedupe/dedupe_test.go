package dedupe

import (
	"reflect"
	"testing"
)

func TestAddFirstWins(t *testing.T) {
	set := NewSet[int]()
	if !set.Add(1) {
		t.Fatalf("expected first add to report new")
	}
	if set.Add(1) {
		t.Fatalf("expected duplicate add to report seen")
	}
	if !set.Seen(1) || set.Seen(2) {
		t.Fatalf("expected membership to reflect adds")
	}
	if set.Len() != 1 {
		t.Fatalf("expected 1 distinct key, got %d", set.Len())
	}
}

func TestFilterKeepsFirstOccurrenceAcrossCalls(t *testing.T) {
	type record struct {
		ID   int
		Name string
	}
	key := func(r record) int { return r.ID }

	set := NewSet[int]()
	first := Filter(set, []record{{1, "a"}, {2, "b"}, {1, "a-dup"}}, key)
	if !reflect.DeepEqual(first, []record{{1, "a"}, {2, "b"}}) {
		t.Fatalf("expected first-wins within a batch, got %+v", first)
	}

	// Overlapping partition: id 2 appears again, id 3 is new.
	second := Filter(set, []record{{2, "b-dup"}, {3, "c"}}, key)
	if !reflect.DeepEqual(second, []record{{3, "c"}}) {
		t.Fatalf("expected cross-batch dedupe, got %+v", second)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 distinct keys, got %d", set.Len())
	}
}
