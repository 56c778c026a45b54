package corpus

import (
	"sort"
)

// Bucket counts syllables, remembering the order they were first seen in
type Bucket struct {
	keys   []Syllable
	counts map[Syllable]int
	total  int
}

func newBucket() *Bucket {
	return &Bucket{counts: make(map[Syllable]int)}
}

func (b *Bucket) add(s Syllable) {
	if _, ok := b.counts[s]; !ok {
		b.keys = append(b.keys, s)
	}
	b.counts[s]++
	b.total++
}

// Keys returns the distinct syllables in first-seen order
func (b *Bucket) Keys() []Syllable {
	if b == nil {
		return nil
	}
	return b.keys
}

// Count returns how often s was seen
func (b *Bucket) Count(s Syllable) int {
	if b == nil {
		return 0
	}
	return b.counts[s]
}

// Total is the sum of all counts
func (b *Bucket) Total() int {
	if b == nil {
		return 0
	}
	return b.total
}

// Len is the number of distinct syllables
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Transition is a directed edge between two adjacent syllables
type Transition struct {
	From Syllable
	To   Syllable
}

// Tables holds the positional and transition statistics of a corpus.
// It is read-only once built.
type Tables struct {
	positions         map[Role]*Bucket
	transitions       map[Syllable]*Bucket
	transitionSources map[Transition]*provenance
	middleCounts      map[int]int
}

func newTables() *Tables {
	return &Tables{
		positions:         make(map[Role]*Bucket),
		transitions:       make(map[Syllable]*Bucket),
		transitionSources: make(map[Transition]*provenance),
		middleCounts:      make(map[int]int),
	}
}

func (t *Tables) record(name string, syls []Syllable) {
	middles := 0
	prev := StartMarker
	for _, s := range syls {
		bucketFor(t.positions, s.Role).add(s)
		t.link(name, prev, s)
		if s.Role == RoleMiddle {
			middles++
		}
		prev = s
	}
	t.link(name, prev, EndMarker)
	t.middleCounts[middles]++
}

func (t *Tables) link(name string, from, to Syllable) {
	bucketFor(t.transitions, from).add(to)
	provenanceFor(t.transitionSources, Transition{From: from, To: to}).add(name)
}

func bucketFor[K comparable](m map[K]*Bucket, key K) *Bucket {
	if m[key] == nil {
		m[key] = newBucket()
	}
	return m[key]
}

// Position returns the bucket of syllables seen in the given role.
// The result may be nil, which behaves as an empty bucket.
func (t *Tables) Position(role Role) *Bucket {
	return t.positions[role]
}

// Successors returns what followed prev in the corpus, EndMarker included
func (t *Tables) Successors(prev Syllable) *Bucket {
	return t.transitions[prev]
}

// TransitionSources lists the names in which next directly followed prev
func (t *Tables) TransitionSources(prev, next Syllable) []string {
	return t.transitionSources[Transition{From: prev, To: next}].list()
}

// MiddleCounts returns the observed numbers of middle syllables per name
// in ascending order, with how many names had each.
func (t *Tables) MiddleCounts() (counts []int, weights []int) {
	for n := range t.middleCounts {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		weights = append(weights, t.middleCounts[n])
	}
	return counts, weights
}
