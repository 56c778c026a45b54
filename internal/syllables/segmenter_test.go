package syllables

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFantasySegmenter(t *testing.T) {
	assert := assert.New(t)
	seg := NewFantasySegmenter()

	t.Run("Reference names", func(t *testing.T) {
		cases := map[string][]string{
			"Aragorn":        {"A", "ra", "gorn"},
			"Arwen":          {"Ar", "wen"},
			"Bilbo":          {"Bil", "bo"},
			"Gwyllion":       {"Gwy", "lli", "on"},
			"Andromeda":      {"An", "dro", "me", "da"},
			"Mephistopheles": {"Me", "phis", "to", "phe", "les"},
			"Quendi":         {"Quen", "di"},
			"Freya":          {"Fre", "ya"},
		}
		for name, expected := range cases {
			assert.Equalf(expected, seg.Segment(name), "segmenting %s", name)
		}
	})

	t.Run("Syllable counts", func(t *testing.T) {
		counts := map[string]int{
			"Thor": 1, "Lir": 1, "Drizzt": 1, "Haask": 1,
			"Thorin": 2, "Halphas": 2, "Iblis": 2, "Heimdall": 2,
			"Mephisto": 3, "Haborym": 3, "Drekavac": 3,
		}
		for name, n := range counts {
			assert.Lenf(seg.Segment(name), n, "segmenting %s", name)
		}
	})

	t.Run("Round trips exactly", func(t *testing.T) {
		for _, name := range []string{"Éowyn", "Gen'i", "Mac Tíre", "Sméagol", "Tyr-Anwë", "BRRR", "x"} {
			assert.Equal(name, strings.Join(seg.Segment(name), ""))
		}
	})

	t.Run("Accented vowels are vowels", func(t *testing.T) {
		assert.Equal([]string{"Éo", "wyn"}, seg.Segment("Éowyn"))
	})

	t.Run("No vowel means one syllable", func(t *testing.T) {
		assert.Equal([]string{"Brrr"}, seg.Segment("Brrr"))
	})

	t.Run("No letters means no syllables", func(t *testing.T) {
		assert.Empty(seg.Segment(""))
		assert.Empty(seg.Segment("   "))
		assert.Empty(seg.Segment("'-'"))
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(seg.Segment("Mephistopheles"), seg.Segment("Mephistopheles"))
	})
}

func TestJapaneseSegmenter(t *testing.T) {
	assert := assert.New(t)
	seg := NewJapaneseSegmenter()

	t.Run("Reference names", func(t *testing.T) {
		cases := map[string][]string{
			"Hattori":    {"Ha", "tto", "ri"},
			"Gen'i":      {"Gen", "'i"},
			"Hanzou":     {"Han", "zo", "u"},
			"Bun":        {"Bun"},
			"Fuuma":      {"Fu", "u", "ma"},
			"Kenya":      {"Ke", "nya"},
			"Matchiyo":   {"Ma", "tchi", "yo"},
			"Chousokabe": {"Cho", "u", "so", "ka", "be"},
		}
		for name, expected := range cases {
			assert.Equalf(expected, seg.Segment(name), "segmenting %s", name)
		}
	})

	t.Run("Mora counts", func(t *testing.T) {
		counts := map[string]int{
			"Ieyasu": 4, "Ujiie": 4, "Bungoro": 3, "Honganji": 3, "Shinobu": 3,
		}
		for name, n := range counts {
			assert.Lenf(seg.Segment(name), n, "segmenting %s", name)
		}
	})

	t.Run("Stray consonants stay attached", func(t *testing.T) {
		for _, name := range []string{"Takeshk", "Xoto", "Ryōma", "Nnn"} {
			parts := seg.Segment(name)
			assert.NotEmpty(parts)
			assert.Equal(name, strings.Join(parts, ""))
		}
	})

	t.Run("No letters means no syllables", func(t *testing.T) {
		assert.Empty(seg.Segment(""))
		assert.Empty(seg.Segment("--"))
	})
}

func TestRegistry(t *testing.T) {
	assert := assert.New(t)

	t.Run("Parse known kinds", func(t *testing.T) {
		k, err := ParseKind(" Japanese ")
		assert.NoError(err)
		assert.Equal(KindJapanese, k)

		k, err = ParseKind("fantasy")
		assert.NoError(err)
		assert.Equal(KindFantasy, k)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := ParseKind("klingon")
		assert.True(errors.Is(err, ErrUnknownSegmenter))

		_, err = New(Kind("klingon"))
		assert.ErrorIs(err, ErrUnknownSegmenter)
	})

	t.Run("New builds each kind", func(t *testing.T) {
		for _, k := range Kinds() {
			seg, err := New(k)
			assert.NoError(err)
			assert.NotNil(seg)
		}
		assert.Equal([]Kind{KindFantasy, KindJapanese}, Kinds())
	})
}

type countingSegmenter struct {
	mu    sync.Mutex
	calls int
	inner Segmenter
}

func (c *countingSegmenter) Segment(name string) []string {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner.Segment(name)
}

func TestCached(t *testing.T) {
	assert := assert.New(t)

	counting := &countingSegmenter{inner: NewFantasySegmenter()}
	cached, err := NewCached(counting, 8)
	require.NoError(t, err)

	t.Run("Memoizes results", func(t *testing.T) {
		first := cached.Segment("Aragorn")
		second := cached.Segment("Aragorn")
		assert.Equal(first, second)
		assert.Equal(1, counting.calls)
		assert.Equal(1, cached.Len())
	})

	t.Run("Callers cannot corrupt the cache", func(t *testing.T) {
		parts := cached.Segment("Arwen")
		parts[0] = "XX"
		assert.Equal([]string{"Ar", "wen"}, cached.Segment("Arwen"))
	})

	t.Run("Rejects a non-positive size", func(t *testing.T) {
		_, err := NewCached(counting, 0)
		assert.Error(err)
	})
}
