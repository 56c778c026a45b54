package corpus

import (
	"fmt"
	"strings"

	"github.com/thoas/go-funk"
	"golang.org/x/text/unicode/norm"

	"github.com/wyrdbound/wyrdbound-rng/internal/syllables"
)

// Entry is one normalized corpus name with its labelled syllables
type Entry struct {
	Name      string
	Syllables []Syllable
}

// Texts returns the syllable texts of the entry in order
func (e Entry) Texts() []string {
	out := make([]string, len(e.Syllables))
	for i, s := range e.Syllables {
		out[i] = s.Text
	}
	return out
}

// Model is the segmented corpus. It is immutable once Build returns.
type Model struct {
	entries []Entry
	counts  map[Syllable]int
	sources map[Syllable]*provenance
	byRole  map[Role][]Syllable
	texts   []string
	byText  map[string][]Syllable
	tables  *Tables
}

// Normalize trims a raw name, collapses inner whitespace runs to a single
// space and puts it in Unicode NFC form.
func Normalize(raw string) string {
	return norm.NFC.String(strings.Join(strings.Fields(raw), " "))
}

// Build segments every name and derives the corpus statistics in one pass.
// It fails on the first invalid entry; no partial model is returned.
func Build(names []string, seg syllables.Segmenter) (*Model, error) {
	if len(names) == 0 {
		return nil, ErrEmptyCorpus
	}

	m := &Model{
		entries: make([]Entry, 0, len(names)),
		counts:  make(map[Syllable]int),
		sources: make(map[Syllable]*provenance),
		byRole:  make(map[Role][]Syllable),
		byText:  make(map[string][]Syllable),
		tables:  newTables(),
	}

	for i, raw := range names {
		name := Normalize(raw)
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrInvalidName, i)
		}
		parts := seg.Segment(name)
		if len(parts) == 0 {
			return nil, fmt.Errorf("%w: entry %d (%q) has no syllables", ErrInvalidName, i, raw)
		}
		if joined := strings.Join(parts, ""); joined != name {
			return nil, fmt.Errorf("%w: entry %d (%q) segments to %q", ErrInvalidName, i, raw, joined)
		}
		m.add(name, Label(parts))
	}
	return m, nil
}

func (m *Model) add(name string, syls []Syllable) {
	m.entries = append(m.entries, Entry{Name: name, Syllables: syls})
	for _, s := range syls {
		if _, seen := m.counts[s]; !seen {
			m.byRole[s.Role] = append(m.byRole[s.Role], s)
			if _, known := m.byText[s.Text]; !known {
				m.texts = append(m.texts, s.Text)
			}
			m.byText[s.Text] = append(m.byText[s.Text], s)
		}
		m.counts[s]++
		provenanceFor(m.sources, s).add(name)
	}
	m.tables.record(name, syls)
}

// Entries returns the normalized corpus in input order. Callers must not modify it.
func (m *Model) Entries() []Entry { return m.entries }

// Len is the number of corpus names
func (m *Model) Len() int { return len(m.entries) }

// Tables returns the frequency and transition tables
func (m *Model) Tables() *Tables { return m.tables }

// Count returns the occurrences of s in its role
func (m *Model) Count(s Syllable) int { return m.counts[s] }

// Sources returns the names s was extracted from, in first-seen order
func (m *Model) Sources(s Syllable) []string { return m.sources[s].list() }

// Syllables returns the distinct syllables seen in a role, in first-seen order
func (m *Model) Syllables(role Role) []Syllable { return m.byRole[role] }

// Texts returns every distinct syllable text regardless of role
func (m *Model) Texts() []string { return m.texts }

// Contains reports whether text occurs as a syllable in any role
func (m *Model) Contains(text string) bool {
	_, ok := m.byText[text]
	return ok
}

// Variants returns the role-tagged syllables sharing the given text
func (m *Model) Variants(text string) []Syllable { return m.byText[text] }

// Frequency returns the occurrences of text summed across roles
func (m *Model) Frequency(text string) int {
	total := 0
	for _, s := range m.byText[text] {
		total += m.counts[s]
	}
	return total
}

// SourcesOfText returns the names containing text in any role, deduplicated
func (m *Model) SourcesOfText(text string) []string {
	var out []string
	for _, s := range m.byText[text] {
		out = append(out, m.sources[s].list()...)
	}
	return funk.UniqString(out)
}
