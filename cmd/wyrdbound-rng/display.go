package main

import (
	"fmt"
	"strings"

	"github.com/wyrdbound/wyrdbound-rng/internal/analysis"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpus"
	"github.com/wyrdbound/wyrdbound-rng/internal/corpusfile"
	"github.com/wyrdbound/wyrdbound-rng/internal/namegen"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// displayNames prints one name per line, with optional details underneath
func displayNames(names []namegen.GeneratedName, sources, details bool) {
	for _, n := range names {
		marker := ""
		if n.ExistsInCorpus {
			marker = " (in corpus)"
		}
		fmt.Printf("%s%s\n", n.Name, marker)

		if details {
			fmt.Printf("  syllables:   %s\n", strings.Join(n.Syllables, " · "))
			if norm, ok := n.NormalizedProbability(); ok {
				fmt.Printf("  probability: %.3e (normalized %.4f)\n", *n.Probability, norm)
			}
		}
		if sources && len(n.SourceNames) > 0 {
			fmt.Printf("  sources:     %s\n", strings.Join(n.SourceNames, ", "))
		}
	}
}

// displayBreakdown shows how the corpus was segmented
func displayBreakdown(file *corpusfile.File, entries []corpus.Entry) {
	fmt.Println(rule)
	if file.Metadata.Description != "" {
		fmt.Println(file.Metadata.Description)
	}
	fmt.Printf("%d names", len(file.Names))
	if file.Metadata.Version != "" {
		fmt.Printf(", version %s", file.Metadata.Version)
	}
	fmt.Println()
	for _, src := range file.Metadata.Sources {
		fmt.Printf("Source: %s %s\n", src.Name, src.URL)
	}
	fmt.Println(rule)

	for _, e := range entries {
		fmt.Printf("%-20s %s\n", e.Name, strings.Join(e.Texts(), " · "))
	}
}

// displaySyllableInfo prints corpus statistics for each requested syllable
func displaySyllableInfo(infos []analysis.SyllableInfo) {
	for _, info := range infos {
		fmt.Println(rule)
		if !info.Found {
			fmt.Printf("%q does not occur in the corpus\n", info.Text)
			continue
		}
		fmt.Printf("%q occurs %d times\n", info.Text, info.Frequency)
		for _, role := range corpus.Roles {
			if n := info.Roles[role]; n > 0 {
				fmt.Printf("  as %-7s %d\n", role, n)
			}
		}
		fmt.Printf("  starts a name: %.4f\n", info.StartProbability)
		fmt.Printf("  ends a name:   %.4f\n", info.EndProbability)
		fmt.Printf("  examples:      %s\n", strings.Join(info.Examples, ", "))
		for _, t := range info.TopTransitions {
			fmt.Printf("  -> %-10s %.4f (%d)\n", t.To, t.Probability, t.Count)
		}
	}
	fmt.Println(rule)
}
