package prompt

import (
	"strings"

	"zeroenh/internal/logging"
)

// Selection records one filler choice, including how many hash attempts
// it took and whether the anti-pair scan was exhausted.
type Selection struct {
	Category  string `json:"category"`
	Value     string `json:"value"`
	Attempts  uint32 `json:"attempts"`
	Exhausted bool   `json:"exhausted,omitempty"`
}

// runContext carries the per-run state that selection depends on: the
// deterministic coordinates plus the accumulated present strings and the
// blocked terms their anti-pair triggers imply.
type runContext struct {
	profile   *Profile
	seed      uint32
	signature uint32
	present   []string
	blocked   []string
}

func newRunContext(p *Profile, seed, signature uint32) *runContext {
	return &runContext{profile: p, seed: seed, signature: signature}
}

// addPresent registers a phrase as part of the run's content and extends
// the blocked-term list with any anti-pair triggers it contains. Both
// sides of the comparison are lowercased; matching is plain substring.
func (rc *runContext) addPresent(phrase string) {
	lower := strings.ToLower(phrase)
	rc.present = append(rc.present, lower)
	for trigger, terms := range rc.profile.AntiPairs {
		if !strings.Contains(lower, strings.ToLower(trigger)) {
			continue
		}
		for _, term := range terms {
			rc.blocked = append(rc.blocked, strings.ToLower(term))
		}
	}
}

// violatesAntiPair reports whether a candidate contains any term blocked
// by the triggers seen so far.
func (rc *runContext) violatesAntiPair(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, term := range rc.blocked {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// selectFiller picks a pool entry for the category by walking hash
// attempts until a candidate clears the anti-pair constraints. Attempt 0
// is the primary candidate; if every attempt violates a constraint the
// primary wins anyway, so the run always produces output.
func (rc *runContext) selectFiller(category string) Selection {
	pool := rc.profile.Pools[category]
	size := len(pool)
	sel := Selection{Category: category}
	if size == 0 {
		return sel
	}

	var primary string
	for attempt := uint32(0); attempt < uint32(size); attempt++ {
		h := hashCoordinate(rc.seed, rc.signature, category, attempt)
		candidate := pool[hashToIndex(h, size)]
		if attempt == 0 {
			primary = candidate
		}
		if rc.violatesAntiPair(candidate) {
			continue
		}
		sel.Value = candidate
		sel.Attempts = attempt
		return sel
	}

	logging.Get(logging.CategoryEngine).Debug("anti-pair exhaustion in category %s: keeping primary candidate %q", category, primary)
	sel.Value = primary
	sel.Attempts = 0
	sel.Exhausted = true
	return sel
}
