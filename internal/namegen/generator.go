package namegen

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thoas/go-funk"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wyrdbound/wyrdbound-rng/internal/analysis"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
	"github.com/wyrdbound/wyrdbound-rng/internal/random"
	"github.com/wyrdbound/wyrdbound-rng/internal/syllables"
)

// strategy produces one candidate name within budget characters
type strategy interface {
	attempt(m *corpus.Model, a *analysis.Analyzer, rng *rand.Rand, budget int) (draft, bool)
}

var strategies = map[Algorithm]strategy{
	VerySimple: verySimple{},
	Simple:     simple{},
	Bayesian:   bayesian{},
}

// Generator creates names from one corpus. It is safe for concurrent use.
type Generator struct {
	names       []string
	known       map[string]struct{}
	segmenter   syllables.Segmenter
	logger      *slog.Logger
	alpha       float64
	maxAttempts int
	strategies  map[Algorithm]strategy

	ready    atomic.Bool
	mu       sync.Mutex
	model    *corpus.Model
	analyzer *analysis.Analyzer
	builds   atomic.Int32
}

// New creates a Generator over names. The corpus is segmented lazily, on
// the first call that needs it.
func New(names []string, opts ...Option) (*Generator, error) {
	if len(names) == 0 {
		return nil, corpus.ErrEmptyCorpus
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	seg := s.segmenter
	if seg == nil {
		kind, err := syllables.ParseKind(s.kind)
		if err != nil {
			return nil, err
		}
		if seg, err = syllables.New(kind); err != nil {
			return nil, err
		}
	}
	if s.cacheSize > 0 {
		cached, err := syllables.NewCached(seg, s.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("segment cache: %w", err)
		}
		seg = cached
	}

	logger := s.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Generator{
		names:       append([]string(nil), names...),
		known:       make(map[string]struct{}, 2*len(names)),
		segmenter:   seg,
		logger:      logger,
		alpha:       s.alpha,
		maxAttempts: s.maxAttempts,
		strategies:  strategies,
	}
	for _, n := range names {
		g.known[n] = struct{}{}
		g.known[corpus.Normalize(n)] = struct{}{}
	}
	return g, nil
}

// ensureModel builds the corpus model once. A failed build leaves the
// Generator uninitialized so the next call retries.
func (g *Generator) ensureModel() error {
	if g.ready.Load() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ready.Load() {
		return nil
	}

	started := time.Now()
	model, err := corpus.Build(g.names, g.segmenter)
	if err != nil {
		return err
	}
	g.model = model
	g.analyzer = analysis.New(model, g.alpha)
	g.builds.Add(1)
	g.ready.Store(true)

	g.logger.Debug("corpus model built",
		slog.Int("names", model.Len()),
		slog.Int("syllables", len(model.Texts())),
		slog.Duration("took", time.Since(started)),
	)
	return nil
}

// GenerateName produces one name no longer than opts.MaxLen characters
func (g *Generator) GenerateName(opts GenerateOptions) (GeneratedName, error) {
	opts, err := opts.normalize()
	if err != nil {
		return GeneratedName{}, err
	}
	strat, ok := g.strategies[opts.Algorithm]
	if !ok {
		return GeneratedName{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(opts.Algorithm))
	}
	if err := g.ensureModel(); err != nil {
		return GeneratedName{}, err
	}
	rng, err := random.New(opts.Seed)
	if err != nil {
		return GeneratedName{}, err
	}

	best := 0.0
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		d, ok := strat.attempt(g.model, g.analyzer, rng, opts.MaxLen)
		if !ok {
			continue
		}
		if d.probability != nil {
			if *d.probability > best {
				best = *d.probability
			}
			if *d.probability < *opts.MinProbability {
				continue
			}
		}

		joined := strings.Join(d.syllables, "")
		name := capitalize(joined)
		if runeLen(name) > opts.MaxLen {
			continue
		}
		return GeneratedName{
			Name:           name,
			Syllables:      d.syllables,
			SourceNames:    funk.UniqString(d.sources),
			Probability:    d.probability,
			ExistsInCorpus: g.NameExistsInCorpus(name) || g.NameExistsInCorpus(joined),
			Algorithm:      opts.Algorithm,
		}, nil
	}

	exhausted := &ExhaustedError{
		Algorithm:       opts.Algorithm,
		Attempts:        g.maxAttempts,
		MaxLen:          opts.MaxLen,
		MinProbability:  *opts.MinProbability,
		BestProbability: best,
	}
	g.logger.Debug("name generation exhausted",
		slog.String("algorithm", string(opts.Algorithm)),
		slog.Int("attempts", exhausted.Attempts),
		slog.Int("max_len", opts.MaxLen),
		slog.Float64("best_probability", best),
	)
	return GeneratedName{}, exhausted
}

// Generate produces count independent names. With a non-zero seed the
// i-th name is generated with seed+i, skipping zero.
func (g *Generator) Generate(count int, opts GenerateOptions) ([]GeneratedName, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidOptions, count)
	}
	out := make([]GeneratedName, 0, count)
	for i := 0; i < count; i++ {
		o := opts
		if o.Seed != 0 {
			o.Seed = batchSeed(o.Seed, i)
		}
		name, err := g.GenerateName(o)
		if err != nil {
			return out, err
		}
		out = append(out, name)
	}
	return out, nil
}

// batchSeed offsets a non-zero seed by i without ever landing on zero,
// which would select a random seed.
func batchSeed(seed int64, i int) int64 {
	s := seed + int64(i)
	if seed < 0 && s >= 0 {
		s++
	}
	return s
}

// NameExistsInCorpus reports whether candidate is exactly one of the corpus
// names, as supplied or normalized. The match is case-sensitive.
func (g *Generator) NameExistsInCorpus(candidate string) bool {
	_, ok := g.known[candidate]
	return ok
}

// SyllableProbabilityInfo reports corpus statistics for each syllable text
func (g *Generator) SyllableProbabilityInfo(texts ...string) ([]analysis.SyllableInfo, error) {
	if err := g.ensureModel(); err != nil {
		return nil, err
	}
	out := make([]analysis.SyllableInfo, len(texts))
	for i, t := range texts {
		out[i] = g.analyzer.Info(t)
	}
	return out, nil
}

// SequenceProbability returns the joint probability of a syllable sequence
func (g *Generator) SequenceProbability(texts []string) (float64, error) {
	if err := g.ensureModel(); err != nil {
		return 0, err
	}
	return g.analyzer.ProbabilityOf(texts), nil
}

// Breakdown returns the first limit segmented corpus entries, or all of
// them when limit is not positive.
func (g *Generator) Breakdown(limit int) ([]corpus.Entry, error) {
	if err := g.ensureModel(); err != nil {
		return nil, err
	}
	entries := g.model.Entries()
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// Corpus returns the built corpus model
func (g *Generator) Corpus() (*corpus.Model, error) {
	if err := g.ensureModel(); err != nil {
		return nil, err
	}
	return g.model, nil
}

// Segment splits a name with the Generator's segmenter
func (g *Generator) Segment(name string) []string {
	return g.segmenter.Segment(name)
}

// capitalize upper-cases the first letter of each word and lower-cases the rest
func capitalize(s string) string {
	return cases.Title(language.Und).String(s)
}
