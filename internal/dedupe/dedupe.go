// Package dedupe provides first-wins deduplication keyed by natural id.
// Cursor pagination can repeat boundary records across adjacent pages, and
// date-partitioned fetches can both return a game sitting on a partition
// edge; a single Set spanning the whole run keeps exactly one copy.
package dedupe

// Set tracks seen keys with O(1) membership checks.
type Set[K comparable] struct {
	seen map[K]struct{}
}

// NewSet returns an empty Set.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{seen: make(map[K]struct{})}
}

// Add records the key and reports whether this is its first occurrence.
func (s *Set[K]) Add(key K) bool {
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

// Seen reports whether the key has been added before.
func (s *Set[K]) Seen(key K) bool {
	_, ok := s.seen[key]
	return ok
}

// Len returns the number of distinct keys added so far.
func (s *Set[K]) Len() int {
	return len(s.seen)
}

// Filter returns the items whose key is seen for the first time in the given
// Set, preserving input order. The Set is updated in place so it can span
// multiple calls (e.g. one call per date partition).
func Filter[T any, K comparable](set *Set[K], items []T, key func(T) K) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if set.Add(key(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}
