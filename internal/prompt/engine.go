package prompt

import (
	"strings"

	"zeroenh/internal/logging"
)

// DefaultMaxWords is the word budget applied when the caller does not set
// one.
const DefaultMaxWords = 150

// Options carries the assembly knobs that sit outside the deterministic
// coordinates. Zero values mean defaults.
type Options struct {
	MaxWords int
	Prefix   string
	Suffix   string
}

// Result is the full trace of one enhancement run. Output is the final
// string; the remaining fields expose every intermediate decision so
// callers can inspect or render them.
type Result struct {
	Output        string      `json:"output"`
	Profile       string      `json:"profile"`
	Intensity     Intensity   `json:"intensity"`
	Seed          uint32      `json:"seed"`
	Signature     uint32      `json:"signature"`
	TemplateIndex int         `json:"template_index"`
	Tokens        []Token     `json:"tokens,omitempty"`
	Gaps          GapAnalysis `json:"gaps"`
	Selections    []Selection `json:"selections,omitempty"`
}

// Enhance runs the full pipeline and returns the enhanced prompt. The
// same prompt, seed, intensity, and profile always produce the same
// output.
func Enhance(promptText string, seed uint32, intensity Intensity, profile *Profile, opts Options) string {
	return Run(promptText, seed, intensity, profile, opts).Output
}

// Run executes the pipeline and returns the full trace: tokenize,
// classify, analyze gaps, select fillers under anti-pair constraints,
// assemble through a template, dedup, and enforce the word budget. A nil
// profile falls back to the builtin default, an unknown intensity to
// moderate, and a non-positive word budget to DefaultMaxWords.
func Run(promptText string, seed uint32, intensity Intensity, profile *Profile, opts Options) Result {
	timer := logging.StartTimer(logging.CategoryEngine, "enhance")
	defer timer.Stop()

	if profile == nil {
		profile = DefaultProfile()
	}
	if !intensity.Valid() {
		intensity = IntensityModerate
	}
	maxWords := opts.MaxWords
	if maxWords < 1 {
		maxWords = DefaultMaxWords
	}

	signature := inputSignature(promptText)
	tokens := ClassifyPrompt(profile, promptText)
	gaps := analyzeGaps(profile, tokens, intensity)

	rc := newRunContext(profile, seed, signature)
	for _, t := range tokens {
		rc.addPresent(t.Text)
	}

	selections := make([]Selection, 0, len(gaps.FillSet))
	for _, category := range gaps.FillSet {
		sel := rc.selectFiller(category)
		if sel.Value != "" {
			rc.addPresent(sel.Value)
		}
		selections = append(selections, sel)
	}

	content := categoryContent(profile, tokens, selections)
	templateIndex := chooseTemplate(rc)
	var rendered string
	if len(profile.Templates) > 0 {
		rendered = renderTemplate(profile.Templates[templateIndex], content)
	} else {
		logging.EngineDebug("profile %s has no templates: joining content by category order", profile.Name)
		rendered = joinByCategory(profile, content)
	}

	assembled := appendUnclassified(rendered, tokens)
	assembled = dedupPhrases(assembled)
	assembled = enforceWordBudget(assembled, maxWords)
	output := applyAffixes(assembled, opts.Prefix, opts.Suffix)

	logging.Engine("enhanced %d tokens into %d words (profile=%s intensity=%s seed=%d template=%d fillers=%d)",
		len(tokens), len(strings.Fields(output)), profile.Name, intensity, seed, templateIndex, len(selections))

	return Result{
		Output:        output,
		Profile:       profile.Name,
		Intensity:     intensity,
		Seed:          seed,
		Signature:     signature,
		TemplateIndex: templateIndex,
		Tokens:        tokens,
		Gaps:          gaps,
		Selections:    selections,
	}
}
