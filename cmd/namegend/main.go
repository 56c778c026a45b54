package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	ldap "github.com/vjeantet/ldapserver"

	"github.com/wyrdbound/wyrdbound-rng/internal/config"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpusfile"
	"github.com/wyrdbound/wyrdbound-rng/internal/ldapserver"
	"github.com/wyrdbound/wyrdbound-rng/internal/logger"
	"github.com/wyrdbound/wyrdbound-rng/internal/namegen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", logger.Error(err))
		os.Exit(2)
	}

	var listenAddr, corpusPath, baseDN string
	flag.StringVar(&listenAddr, "listen", cfg.LDAPListen, "Address to listen on for incoming LDAP connections")
	flag.StringVar(&corpusPath, "corpus", cfg.CorpusPath, "YAML corpus file to generate names from")
	flag.StringVar(&baseDN, "base-dn", cfg.LDAPBaseDN, "Directory suffix")
	flag.Parse()

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("config", logger.Error(err))
		os.Exit(2)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		slog.Error("config", logger.Error(err))
		os.Exit(2)
	}
	log := logger.New(logger.WithLevel(level), logger.WithFormat(format), logger.WithAttr(logger.Component("namegend")))
	ldap.Logger = slog.NewLogLogger(log.Handler(), slog.LevelDebug)

	if corpusPath == "" {
		log.Error("no corpus given: use -corpus or RNG_CORPUS")
		os.Exit(2)
	}
	file, err := corpusfile.Load(corpusPath)
	if err != nil {
		log.Error("loading corpus failed", logger.Error(err))
		os.Exit(1)
	}
	kind, err := file.SegmenterKind(cfg.Segmenter)
	if err != nil {
		log.Error("selecting segmenter failed", logger.Error(err))
		os.Exit(1)
	}
	alg, err := namegen.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		log.Error("selecting algorithm failed", logger.Error(err))
		os.Exit(1)
	}

	gen, err := namegen.New(file.Names,
		namegen.WithSegmenter(string(kind)),
		namegen.WithLogger(log),
		namegen.WithSmoothing(cfg.Smoothing),
		namegen.WithMaxAttempts(cfg.MaxAttempts),
		namegen.WithSegmentCache(cfg.SegmentCache),
	)
	if err != nil {
		log.Error("creating generator failed", logger.Error(err))
		os.Exit(1)
	}
	// Build the model before accepting connections
	if _, err := gen.Corpus(); err != nil {
		log.Error("building corpus model failed", logger.Error(err))
		os.Exit(1)
	}

	server := ldapserver.NewServer(listenAddr, gen,
		ldapserver.WithBaseDN(baseDN),
		ldapserver.WithLogger(log),
		ldapserver.WithDefaults(namegen.GenerateOptions{
			MaxLen:         cfg.MaxLen,
			Algorithm:      alg,
			MinProbability: namegen.Threshold(cfg.MinProbability),
		}),
	)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Info("shutting down")
		server.Stop()
	}()

	log.Info("starting LDAP name directory",
		slog.String("listen", listenAddr),
		slog.String("corpus", corpusPath),
		slog.Int("names", len(file.Names)),
	)
	if err := server.Start(); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}
