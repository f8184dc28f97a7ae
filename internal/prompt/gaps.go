package prompt

import "math"

// GapAnalysis is the outcome of comparing classified input against a
// profile's category set for one run.
type GapAnalysis struct {
	// Present marks categories that had at least one classified token.
	Present map[string]bool `json:"present"`

	// Missing lists categories without input coverage, in pool declaration
	// order.
	Missing []string `json:"missing"`

	// FillSet lists the categories that receive fillers this run:
	// mandatory ones first, then the intensity prefix of the remaining
	// gaps, both in pool declaration order.
	FillSet []string `json:"fill_set"`
}

// analyzeGaps determines which categories the run fills. Mandatory
// categories are always filled when missing, whatever the intensity. The
// remaining gaps contribute a prefix of round(|missing| * fill_rate),
// capped at the remaining count. An empty prompt fills mandatory
// categories only.
func analyzeGaps(p *Profile, tokens []Token, intensity Intensity) GapAnalysis {
	present := make(map[string]bool, len(p.Categories))
	for _, t := range tokens {
		if t.Classified() {
			present[t.Category] = true
		}
	}

	mandatory := make(map[string]bool, len(p.Rules.Mandatory))
	for _, category := range p.Rules.Mandatory {
		mandatory[category] = true
	}

	ga := GapAnalysis{Present: present}
	var rest []string
	for _, category := range p.Categories {
		if present[category] {
			continue
		}
		ga.Missing = append(ga.Missing, category)
		if mandatory[category] {
			ga.FillSet = append(ga.FillSet, category)
		} else {
			rest = append(rest, category)
		}
	}

	if len(tokens) == 0 {
		return ga
	}

	n := int(math.Round(float64(len(ga.Missing)) * intensity.FillRate()))
	if n > len(rest) {
		n = len(rest)
	}
	ga.FillSet = append(ga.FillSet, rest[:n]...)
	return ga
}
