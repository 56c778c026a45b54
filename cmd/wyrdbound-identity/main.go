package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/wyrdbound/wyrdbound-rng/internal/config"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpusfile"
	"github.com/wyrdbound/wyrdbound-rng/internal/derived"
	"github.com/wyrdbound/wyrdbound-rng/internal/namegen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	keyPath := flag.String("key", "~/.ssh/id_ed25519.pub", "Path to an SSH public or private key")
	corpusPath := flag.String("corpus", cfg.CorpusPath, "YAML corpus file to draw the name from")
	maxLen := flag.Int("l", cfg.MaxLen, "Maximum name length in characters")
	algorithm := flag.String("a", cfg.Algorithm, "Algorithm: very_simple, simple or bayesian")
	flag.Parse()

	expandedKeyPath, err := expandPath(*keyPath)
	if err != nil {
		log.Fatalf("❌ Invalid key path: %v", err)
	}
	pubKey, err := loadPublicKey(expandedKeyPath)
	if err != nil {
		log.Fatalf("❌ Key error: %v", err)
	}

	if *corpusPath == "" {
		log.Fatalf("❌ No corpus given: use -corpus or RNG_CORPUS")
	}
	file, err := corpusfile.Load(*corpusPath)
	if err != nil {
		log.Fatalf("❌ Corpus error: %v", err)
	}
	kind, err := file.SegmenterKind("")
	if err != nil {
		log.Fatalf("❌ Corpus error: %v", err)
	}
	alg, err := namegen.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	gen, err := namegen.New(file.Names, namegen.WithSegmenter(string(kind)), namegen.WithSmoothing(cfg.Smoothing))
	if err != nil {
		log.Fatalf("❌ Generator error: %v", err)
	}

	id := derived.FromPublicKey(pubKey)
	name, err := id.DisplayName(gen, namegen.GenerateOptions{
		MaxLen:         *maxLen,
		Algorithm:      alg,
		MinProbability: namegen.Threshold(cfg.MinProbability),
	})
	if err != nil {
		log.Fatalf("❌ Could not derive a name: %v", err)
	}

	displayBanner()
	displayKeyInfo(expandedKeyPath, pubKey)
	displayIdentity(id, name)
	displayLookup(pubKey, cfg.LDAPBaseDN)
	fmt.Println()
}
