package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/wyrdbound/wyrdbound-rng/internal/config"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpusfile"
	"github.com/wyrdbound/wyrdbound-rng/internal/logger"
	"github.com/wyrdbound/wyrdbound-rng/internal/namegen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	count := flag.Int("n", cfg.Count, "Number of names to generate")
	maxLen := flag.Int("l", cfg.MaxLen, "Maximum name length in characters")
	algorithm := flag.String("a", cfg.Algorithm, "Algorithm: very_simple, simple or bayesian")
	segmenter := flag.String("s", cfg.Segmenter, "Segmenter override: fantasy or japanese (default: from the corpus file)")
	minProb := flag.Float64("min-probability", cfg.MinProbability, "Minimum probability accepted by the bayesian algorithm")
	seed := flag.Int64("seed", 0, "Seed for reproducible output (0 = random)")
	showSources := flag.Bool("show-sources", false, "Show the corpus names each generated name draws from")
	showAnalysis := flag.Bool("show-analysis", false, "Show syllables and probabilities of generated names")
	breakdown := flag.Int("syllables", 0, "Show the syllable breakdown of the first N corpus names instead of generating")
	probabilities := flag.String("probabilities", "", "Comma-separated syllables to report corpus statistics for")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <names.yaml>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := newLogger(cfg)

	path := flag.Arg(0)
	if path == "" {
		path = cfg.CorpusPath
	}
	if path == "" {
		flag.Usage()
		os.Exit(2)
	}

	file, err := corpusfile.Load(path)
	if err != nil {
		fail(log, "loading corpus", err)
	}
	kind, err := file.SegmenterKind(*segmenter)
	if err != nil {
		fail(log, "selecting segmenter", err)
	}
	alg, err := namegen.ParseAlgorithm(*algorithm)
	if err != nil {
		fail(log, "selecting algorithm", err)
	}

	gen, err := namegen.New(file.Names,
		namegen.WithSegmenter(string(kind)),
		namegen.WithLogger(log),
		namegen.WithSmoothing(cfg.Smoothing),
		namegen.WithMaxAttempts(cfg.MaxAttempts),
		namegen.WithSegmentCache(cfg.SegmentCache),
	)
	if err != nil {
		fail(log, "creating generator", err)
	}

	switch {
	case *breakdown > 0:
		entries, err := gen.Breakdown(*breakdown)
		if err != nil {
			fail(log, "segmenting corpus", err)
		}
		displayBreakdown(file, entries)

	case *probabilities != "":
		var texts []string
		for _, t := range strings.Split(*probabilities, ",") {
			if t = strings.TrimSpace(t); t != "" {
				texts = append(texts, t)
			}
		}
		infos, err := gen.SyllableProbabilityInfo(texts...)
		if err != nil {
			fail(log, "analysing syllables", err)
		}
		displaySyllableInfo(infos)

	default:
		names, err := gen.Generate(*count, namegen.GenerateOptions{
			MaxLen:         *maxLen,
			Algorithm:      alg,
			MinProbability: minProb,
			Seed:           *seed,
		})
		displayNames(names, *showSources, *showAnalysis)
		if err != nil {
			fail(log, "generating names", err)
		}
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(logger.Component("cli")),
	)
}

func fail(log *slog.Logger, action string, err error) {
	log.Error(action+" failed", logger.Error(err))
	os.Exit(1)
}
