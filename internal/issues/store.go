// Package issues holds the categorized, deduplicated aggregation state for a
// lint run. Detectors record raw findings into a Store; the report generator
// reads the final state after all detectors have run.
package issues

import (
	"strings"
	"sync"
)

// Issue is a titled aggregation of findings sharing a category. The title is
// the dedup key within its category bucket: repeated records for the same
// title append content, never replace it. The solution is fixed at creation.
type Issue struct {
	Title    string
	Kind     Kind
	Solution string

	content []string
}

// Content returns the accumulated finding lines, newline-joined.
func (i *Issue) Content() string {
	return strings.Join(i.content, "\n")
}

// ContentLines returns a copy of the accumulated content blocks in record
// order. Each block may itself span multiple lines.
func (i *Issue) ContentLines() []string {
	out := make([]string, len(i.content))
	copy(out, i.content)
	return out
}

type bucket struct {
	order   []string
	byTitle map[string]*Issue
}

// Store accumulates issues across a whole lint run. It is constructed per run
// and passed to each detector; there is no package-level state. Record is
// safe for concurrent use so detectors may be fanned out in parallel.
type Store struct {
	mu      sync.Mutex
	buckets map[Category]*bucket
	fail    bool
	total   int
}

// NewStore returns an empty store with one bucket per category.
func NewStore() *Store {
	s := &Store{buckets: make(map[Category]*bucket, len(Categories))}
	for _, c := range Categories {
		s.buckets[c] = &bucket{byTitle: make(map[string]*Issue)}
	}
	return s
}

// Record adds finding content under (category, title). Empty content is a
// no-op. A new title creates the issue with the given kind and solution and
// counts toward TotalIssues; an existing title appends the content with a
// line-break separator and changes nothing else.
func (s *Store) Record(cat Category, kind Kind, title, content, solution string) {
	if content == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.buckets[cat]
	if existing, ok := b.byTitle[title]; ok {
		existing.content = append(existing.content, content)
		return
	}

	b.byTitle[title] = &Issue{
		Title:    title,
		Kind:     kind,
		Solution: solution,
		content:  []string{content},
	}
	b.order = append(b.order, title)
	s.fail = true
	s.total++
}

// Fail reports whether any issue was recorded.
func (s *Store) Fail() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fail
}

// TotalIssues returns the count of distinct (category, title) keys.
func (s *Store) TotalIssues() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Issues returns the category's issues in insertion order.
// Callers must not mutate the returned issues.
func (s *Store) Issues(cat Category) []*Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.buckets[cat]
	out := make([]*Issue, 0, len(b.order))
	for _, title := range b.order {
		out = append(out, b.byTitle[title])
	}
	return out
}

// Titles returns the category's issue titles in insertion order.
func (s *Store) Titles(cat Category) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.buckets[cat]
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}
