package prompt

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// chooseTemplate picks the run's template index from the template
// coordinate. The prompt signature keeps different prompts on different
// templates under the same seed.
func chooseTemplate(rc *runContext) int {
	count := len(rc.profile.Templates)
	if count == 0 {
		return 0
	}
	h := hashCoordinate(rc.seed, rc.signature, templateLabel, 0)
	return hashToIndex(h, count)
}

// categoryContent maps each category to its rendered text. Input phrases
// always win: classified tokens are comma-joined in input order, and a
// filler only lands in a category the input left empty.
func categoryContent(p *Profile, tokens []Token, selections []Selection) map[string]string {
	content := make(map[string]string, len(p.Categories))
	for _, t := range tokens {
		if !t.Classified() {
			continue
		}
		if existing := content[t.Category]; existing != "" {
			content[t.Category] = existing + ", " + t.Text
		} else {
			content[t.Category] = t.Text
		}
	}
	for _, sel := range selections {
		if sel.Value == "" {
			continue
		}
		if content[sel.Category] == "" {
			content[sel.Category] = sel.Value
		}
	}
	return content
}

// renderTemplate substitutes category content into the template and drops
// every comma segment whose placeholders all resolved empty, literal text
// included. Segments without placeholders survive as written.
func renderTemplate(tmpl string, content map[string]string) string {
	segments := strings.Split(tmpl, ",")
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		placeholders := 0
		resolved := 0
		out := placeholderPattern.ReplaceAllStringFunc(segment, func(m string) string {
			placeholders++
			v := content[m[1:len(m)-1]]
			if v != "" {
				resolved++
			}
			return v
		})
		if placeholders > 0 && resolved == 0 {
			continue
		}
		out = strings.Join(strings.Fields(out), " ")
		if out == "" {
			continue
		}
		kept = append(kept, out)
	}
	return strings.Join(kept, ", ")
}

// joinByCategory renders without a template: non-empty category content
// joined in declaration order. Used when a profile carries no templates.
func joinByCategory(p *Profile, content map[string]string) string {
	parts := make([]string, 0, len(p.Categories))
	for _, category := range p.Categories {
		if v := content[category]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// appendUnclassified carries tokens no classifier claimed through to the
// output, after the rendered template, in input order.
func appendUnclassified(rendered string, tokens []Token) string {
	parts := make([]string, 0, len(tokens)+1)
	if rendered != "" {
		parts = append(parts, rendered)
	}
	for _, t := range tokens {
		if !t.Classified() {
			parts = append(parts, t.Text)
		}
	}
	return strings.Join(parts, ", ")
}

// dedupPhrases removes repeated comma phrases, keeping the first
// occurrence. Phrases match when they agree after lowercasing and
// whitespace collapsing.
func dedupPhrases(s string) string {
	segments := strings.Split(s, ",")
	seen := make(map[string]bool, len(segments))
	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		phrase := strings.TrimSpace(segment)
		if phrase == "" {
			continue
		}
		key := strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, phrase)
	}
	return strings.Join(kept, ", ")
}

// enforceWordBudget truncates to maxWords whitespace words and tidies any
// comma the cut left dangling.
func enforceWordBudget(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	truncated := strings.Join(words[:maxWords], " ")
	return strings.TrimRight(truncated, ", ")
}

// applyAffixes attaches the prefix and suffix with single spaces. Affixes
// sit outside the word budget, and empty parts drop out cleanly.
func applyAffixes(core, prefix, suffix string) string {
	parts := make([]string, 0, 3)
	if p := strings.TrimSpace(prefix); p != "" {
		parts = append(parts, p)
	}
	if core != "" {
		parts = append(parts, core)
	}
	if s := strings.TrimSpace(suffix); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
