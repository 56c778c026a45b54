package namegen

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thoas/go-funk"

	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
	"github.com/wyrdbound/wyrdbound-rng/internal/syllables"
)

var tolkien = []string{"Aragorn", "Arwen", "Bilbo"}

var demons = []string{
	"Mephistopheles", "Mephisto", "Haborym", "Halphas", "Iblis", "Heimdall",
	"Drekavac", "Gwyllion", "Thor", "Lir", "Drizzt", "Haask", "Thorin",
	"Andromeda", "Belial", "Asmodeus", "Baalberith", "Lilith", "Marchosias",
}

func newGenerator(t *testing.T, names []string, opts ...Option) *Generator {
	t.Helper()
	g, err := New(names, opts...)
	require.NoError(t, err)
	return g
}

func TestParseAlgorithm(t *testing.T) {
	assert := assert.New(t)

	for in, expected := range map[string]Algorithm{
		"very_simple": VerySimple,
		"Very-Simple": VerySimple,
		" simple ":    Simple,
		"BAYESIAN":    Bayesian,
	} {
		a, err := ParseAlgorithm(in)
		assert.NoError(err)
		assert.Equal(expected, a)
	}

	_, err := ParseAlgorithm("markov")
	assert.ErrorIs(err, ErrUnknownAlgorithm)
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	t.Run("Unknown segmenter", func(t *testing.T) {
		_, err := New(tolkien, WithSegmenter("klingon"))
		assert.ErrorIs(err, syllables.ErrUnknownSegmenter)
	})

	t.Run("Empty corpus", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(err, corpus.ErrEmptyCorpus)
	})

	t.Run("Model is built lazily", func(t *testing.T) {
		g := newGenerator(t, tolkien)
		assert.False(g.ready.Load())
		assert.Equal(int32(0), g.builds.Load())

		_, err := g.GenerateName(GenerateOptions{MaxLen: 10})
		require.NoError(t, err)
		_, err = g.SyllableProbabilityInfo("ra")
		require.NoError(t, err)
		assert.Equal(int32(1), g.builds.Load())
	})

	t.Run("Invalid corpus fails every call without building", func(t *testing.T) {
		var logs bytes.Buffer
		log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		g := newGenerator(t, []string{"Arwen", "   "}, WithLogger(log))
		for i := 0; i < 2; i++ {
			_, err := g.GenerateName(GenerateOptions{MaxLen: 10})
			assert.ErrorIs(err, corpus.ErrInvalidName)
		}
		assert.False(g.ready.Load())
		assert.Nil(g.model)
		assert.Empty(logs.String(), "build errors are returned, not logged")
	})

	t.Run("Custom segmenter without cache", func(t *testing.T) {
		g := newGenerator(t, []string{"Hattori"}, WithSegmenterImpl(syllables.NewJapaneseSegmenter()), WithSegmentCache(0))
		assert.Equal([]string{"Ha", "tto", "ri"}, g.Segment("Hattori"))
	})
}

func TestGenerateName(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, tolkien)

	starts := []string{"A", "Ar", "Bil"}
	ends := []string{"gorn", "wen", "bo"}
	corpusTexts := []string{"A", "ra", "gorn", "Ar", "wen", "Bil", "bo"}

	for _, alg := range Algorithms {
		alg := alg
		t.Run(string(alg)+" recombines corpus syllables", func(t *testing.T) {
			for seed := int64(1); seed <= 200; seed++ {
				n, err := g.GenerateName(GenerateOptions{MaxLen: 12, Algorithm: alg, Seed: seed})
				require.NoError(t, err)
				require.NotEmpty(t, n.Syllables)

				assert.LessOrEqual(utf8.RuneCountInString(n.Name), 12)
				assert.True(funk.ContainsString(starts, n.Syllables[0]), n.Syllables)
				for _, s := range n.Syllables {
					assert.True(funk.ContainsString(corpusTexts, s), s)
				}
				if alg != Bayesian && len(n.Syllables) > 1 {
					assert.True(funk.ContainsString(ends, n.Syllables[len(n.Syllables)-1]), n.Syllables)
				}
				for _, src := range n.SourceNames {
					assert.True(funk.ContainsString(tolkien, src), src)
				}
				assert.Equal(alg, n.Algorithm)
				assert.Equal(g.NameExistsInCorpus(n.Name), n.ExistsInCorpus)
			}
		})
	}

	t.Run("Names are capitalized", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			n, err := g.GenerateName(GenerateOptions{MaxLen: 12, Seed: seed})
			require.NoError(t, err)
			assert.Equal(capitalize(n.Name), n.Name)
		}
	})

	t.Run("Simple only uses observed middles", func(t *testing.T) {
		for seed := int64(1); seed <= 100; seed++ {
			n, err := g.GenerateName(GenerateOptions{MaxLen: 12, Algorithm: Simple, Seed: seed})
			require.NoError(t, err)
			assert.LessOrEqual(len(n.Syllables), 3)
			if len(n.Syllables) == 3 {
				assert.Equal("ra", n.Syllables[1])
			}
		}
	})

	t.Run("Bayesian reports probability", func(t *testing.T) {
		n, err := g.GenerateName(GenerateOptions{MaxLen: 12, Algorithm: Bayesian, Seed: 7})
		require.NoError(t, err)
		require.NotNil(t, n.Probability)
		assert.GreaterOrEqual(*n.Probability, DefaultMinProbability)
		assert.LessOrEqual(*n.Probability, 1.0)

		p, err := g.SequenceProbability(n.Syllables)
		require.NoError(t, err)
		assert.Equal(p, *n.Probability)

		norm, ok := n.NormalizedProbability()
		assert.True(ok)
		assert.GreaterOrEqual(norm, *n.Probability)
	})

	t.Run("Other algorithms report no probability", func(t *testing.T) {
		n, err := g.GenerateName(GenerateOptions{MaxLen: 12, Algorithm: VerySimple, Seed: 3})
		require.NoError(t, err)
		assert.Nil(n.Probability)
		_, ok := n.NormalizedProbability()
		assert.False(ok)
	})
}

func TestMaxLenIsHardCap(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, demons)

	for _, alg := range Algorithms {
		for maxLen := 1; maxLen <= 9; maxLen++ {
			for seed := int64(1); seed <= 30; seed++ {
				n, err := g.GenerateName(GenerateOptions{MaxLen: maxLen, Algorithm: alg, Seed: seed, MinProbability: Threshold(1e-300)})
				if err != nil {
					assert.ErrorIs(err, ErrGenerationExhausted)
					continue
				}
				assert.LessOrEqualf(utf8.RuneCountInString(n.Name), maxLen, "%s produced %q", alg, n.Name)
				assert.NotEmpty(n.Name)
			}
		}
	}
}

func TestGenerationExhausted(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, tolkien)

	_, err := g.GenerateName(GenerateOptions{MaxLen: 3, Algorithm: Bayesian, MinProbability: Threshold(0.99)})
	require.Error(t, err)
	assert.True(errors.Is(err, ErrGenerationExhausted))

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(Bayesian, exhausted.Algorithm)
	assert.Equal(DefaultMaxAttempts, exhausted.Attempts)
	assert.Equal(3, exhausted.MaxLen)
	assert.Equal(0.99, exhausted.MinProbability)
	assert.Greater(exhausted.BestProbability, 0.0)
	assert.Less(exhausted.BestProbability, 0.99)
	assert.Contains(err.Error(), "bayesian")
}

func TestLowerThresholdNeverFailsMore(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, demons, WithMaxAttempts(1))

	thresholds := []float64{0.5, 1e-4, 1e-8, 1e-300, 0}
	failures := make([]int, len(thresholds))
	for seed := int64(1); seed <= 300; seed++ {
		succeeded := false
		for i, p := range thresholds {
			_, err := g.GenerateName(GenerateOptions{MaxLen: 40, Algorithm: Bayesian, Seed: seed, MinProbability: Threshold(p)})
			if err != nil {
				require.ErrorIs(t, err, ErrGenerationExhausted)
				failures[i]++
				assert.Falsef(succeeded, "seed %d failed at %g after passing a higher threshold", seed, p)
				continue
			}
			succeeded = true
		}
	}
	for i := 1; i < len(thresholds); i++ {
		assert.LessOrEqualf(failures[i], failures[i-1], "threshold %g", thresholds[i])
	}

	opts, err := GenerateOptions{MaxLen: 4}.normalize()
	require.NoError(t, err)
	assert.Equal(DefaultMinProbability, *opts.MinProbability)

	opts, err = GenerateOptions{MaxLen: 4, MinProbability: Threshold(0)}.normalize()
	require.NoError(t, err)
	assert.Zero(*opts.MinProbability)
}

func TestNoStartFits(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, []string{"Mephistopheles"}, WithMaxAttempts(5))

	for _, alg := range Algorithms {
		_, err := g.GenerateName(GenerateOptions{MaxLen: 1, Algorithm: alg})
		assert.ErrorIs(err, ErrGenerationExhausted)

		var exhausted *ExhaustedError
		if assert.ErrorAs(err, &exhausted) {
			assert.Equal(5, exhausted.Attempts)
		}
	}
}

func TestSingleSyllableCorpus(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, []string{"Thor"})

	for _, alg := range Algorithms {
		n, err := g.GenerateName(GenerateOptions{MaxLen: 10, Algorithm: alg, Seed: 11})
		require.NoError(t, err)
		assert.Equal("Thor", n.Name)
		assert.Equal([]string{"Thor"}, n.Syllables)
		assert.Equal([]string{"Thor"}, n.SourceNames)
		assert.True(n.ExistsInCorpus)
	}
}

func TestSeedsAreReproducible(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, demons)

	for _, alg := range Algorithms {
		opts := GenerateOptions{MaxLen: 12, Algorithm: alg, Seed: 99}
		a, err := g.GenerateName(opts)
		require.NoError(t, err)
		b, err := g.GenerateName(opts)
		require.NoError(t, err)
		assert.Equal(a, b)
	}

	batch1, err := g.Generate(5, GenerateOptions{MaxLen: 12, Seed: 1000})
	require.NoError(t, err)
	batch2, err := g.Generate(5, GenerateOptions{MaxLen: 12, Seed: 1000})
	require.NoError(t, err)
	assert.Equal(batch1, batch2)

	single, err := g.GenerateName(GenerateOptions{MaxLen: 12, Seed: 1002})
	require.NoError(t, err)
	assert.Equal(single, batch1[2])

	t.Run("Batch crossing zero", func(t *testing.T) {
		assert.Equal(int64(-2), batchSeed(-2, 0))
		assert.Equal(int64(-1), batchSeed(-2, 1))
		assert.Equal(int64(1), batchSeed(-2, 2))
		assert.Equal(int64(2), batchSeed(-2, 3))
		assert.Equal(int64(4), batchSeed(3, 1))

		a, err := g.Generate(4, GenerateOptions{MaxLen: 12, Algorithm: VerySimple, Seed: -2})
		require.NoError(t, err)
		b, err := g.Generate(4, GenerateOptions{MaxLen: 12, Algorithm: VerySimple, Seed: -2})
		require.NoError(t, err)
		assert.Equal(a, b)

		third, err := g.GenerateName(GenerateOptions{MaxLen: 12, Algorithm: VerySimple, Seed: 1})
		require.NoError(t, err)
		assert.Equal(third, a[2])
	})
}

func TestGenerate(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, demons)

	t.Run("Count", func(t *testing.T) {
		names, err := g.Generate(7, GenerateOptions{MaxLen: 10, Algorithm: Bayesian})
		require.NoError(t, err)
		assert.Len(names, 7)
	})

	t.Run("Invalid options", func(t *testing.T) {
		_, err := g.Generate(0, GenerateOptions{MaxLen: 10})
		assert.ErrorIs(err, ErrInvalidOptions)

		_, err = g.GenerateName(GenerateOptions{MaxLen: 0})
		assert.ErrorIs(err, ErrInvalidOptions)

		_, err = g.GenerateName(GenerateOptions{MaxLen: 5, MinProbability: Threshold(1.5)})
		assert.ErrorIs(err, ErrInvalidOptions)

		_, err = g.GenerateName(GenerateOptions{MaxLen: 5, Algorithm: "markov"})
		assert.ErrorIs(err, ErrUnknownAlgorithm)
	})
}

func TestNameExistsInCorpus(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, []string{"Aragorn", "  Mac   Tíre "})

	assert.True(g.NameExistsInCorpus("Aragorn"))
	assert.False(g.NameExistsInCorpus("aragorn"))
	assert.False(g.NameExistsInCorpus("Arag"))
	assert.True(g.NameExistsInCorpus("Mac Tíre"))
	assert.True(g.NameExistsInCorpus("  Mac   Tíre "))
	assert.False(g.ready.Load(), "exact lookups do not need the model")

	t.Run("Inner capitals", func(t *testing.T) {
		g := newGenerator(t, []string{"DeLacy"})
		require.Equal(t, []string{"De", "La", "cy"}, g.Segment("DeLacy"))

		n, err := g.GenerateName(GenerateOptions{MaxLen: 10, Algorithm: Simple, Seed: 4})
		require.NoError(t, err)
		assert.Equal("Delacy", n.Name)
		assert.True(n.ExistsInCorpus)
	})
}

func TestSyllableQueries(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, tolkien)

	infos, err := g.SyllableProbabilityInfo("ra", "zz")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.True(infos[0].Found)
	assert.Equal([]string{"Aragorn"}, infos[0].Examples)
	assert.False(infos[1].Found)

	p, err := g.SequenceProbability([]string{"Zz"})
	require.NoError(t, err)
	assert.Zero(p)

	entries, err := g.Breakdown(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal([]string{"Ar", "wen"}, entries[1].Texts())

	all, err := g.Breakdown(0)
	require.NoError(t, err)
	assert.Len(all, 3)

	m, err := g.Corpus()
	require.NoError(t, err)
	assert.Equal(3, m.Len())
}

func TestConcurrentFirstUseBuildsOnce(t *testing.T) {
	assert := assert.New(t)
	g := newGenerator(t, demons)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			alg := Algorithms[i%len(Algorithms)]
			if _, err := g.GenerateName(GenerateOptions{MaxLen: 12, Algorithm: alg}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(err)
	}
	assert.Equal(int32(1), g.builds.Load())
}
