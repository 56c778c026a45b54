// Package namegen generates invented names by recombining the syllables of
// a corpus of example names.
//
// A Generator owns one corpus. The corpus is segmented and its statistics
// built on first use, exactly once, after which the Generator is safe for
// concurrent use. Three algorithms are available:
//
//   - VerySimple draws syllables uniformly, ignoring frequencies.
//   - Simple draws syllables weighted by how often they held a position.
//   - Bayesian walks the smoothed syllable transition model and rejects
//     names whose joint probability falls below a threshold.
//
// Every call takes its own random source, so a non-zero seed in
// GenerateOptions reproduces the same name for the same corpus.
package namegen
