package analysis

import "github.com/wyrdbound/wyrdbound-rng/internal/corpus"

// TransitionInfo describes one observed successor of a syllable
type TransitionInfo struct {
	From        corpus.Syllable
	To          corpus.Syllable
	Count       int
	Probability float64
}

// SyllableInfo summarizes how a syllable text is used in the corpus
type SyllableInfo struct {
	Text      string
	Found     bool
	Frequency int
	Roles     map[corpus.Role]int
	Examples  []string

	// StartProbability is the chance a generated name opens with this text
	StartProbability float64
	// EndProbability is the share of occurrences that closed a name
	EndProbability float64
	TopTransitions []TransitionInfo
}

// Info reports corpus statistics for a syllable text. Unknown text yields
// an info with Found unset and zero statistics.
func (a *Analyzer) Info(text string) SyllableInfo {
	info := SyllableInfo{Text: text, Roles: map[corpus.Role]int{}}
	variants := a.model.Variants(text)
	if len(variants) == 0 {
		return info
	}

	info.Found = true
	info.Frequency = a.model.Frequency(text)
	info.Examples = a.model.SourcesOfText(text)
	if len(info.Examples) > MaxExamples {
		info.Examples = info.Examples[:MaxExamples]
	}

	terminal := 0
	var transitions []TransitionInfo
	for _, v := range variants {
		n := a.model.Count(v)
		info.Roles[v.Role] = n

		switch v.Role {
		case corpus.RoleStart:
			info.StartProbability += a.TransitionProbability(corpus.StartMarker, v)
		case corpus.RoleSingle:
			info.StartProbability += a.TransitionProbability(corpus.StartMarker, v)
			terminal += n
		case corpus.RoleEnd:
			terminal += n
		}

		next := a.model.Tables().Successors(v)
		for _, to := range next.Keys() {
			transitions = append(transitions, TransitionInfo{
				From:        v,
				To:          to,
				Count:       next.Count(to),
				Probability: a.TransitionProbability(v, to),
			})
		}
	}
	info.EndProbability = float64(terminal) / float64(info.Frequency)

	sortTransitions(transitions)
	if len(transitions) > MaxExamples {
		transitions = transitions[:MaxExamples]
	}
	info.TopTransitions = transitions
	return info
}
