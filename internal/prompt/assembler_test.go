package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		content map[string]string
		want    string
	}{
		{
			name:    "all placeholders resolve",
			tmpl:    "{subject}, {style}",
			content: map[string]string{"subject": "a cat", "style": "cinematic"},
			want:    "a cat, cinematic",
		},
		{
			name:    "segment with only empty placeholders drops",
			tmpl:    "{subject}, {mood} atmosphere",
			content: map[string]string{"subject": "a cat"},
			want:    "a cat",
		},
		{
			name:    "literal text in dropped segment goes too",
			tmpl:    "{mood} scene, {subject}",
			content: map[string]string{"subject": "a cat"},
			want:    "a cat",
		},
		{
			name:    "segment survives when one of two placeholders resolves",
			tmpl:    "{style} {mood} blend, {subject}",
			content: map[string]string{"subject": "a cat", "style": "cinematic"},
			want:    "cinematic blend, a cat",
		},
		{
			name:    "placeholder-free segment survives",
			tmpl:    "{subject}, trending now",
			content: map[string]string{"subject": "a cat"},
			want:    "a cat, trending now",
		},
		{
			name:    "whitespace collapses inside segments",
			tmpl:    "{subject}   in   {environment}",
			content: map[string]string{"subject": "a cat", "environment": "a dark forest"},
			want:    "a cat in a dark forest",
		},
		{
			name:    "everything empty",
			tmpl:    "{subject}, {style}",
			content: map[string]string{},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderTemplate(tt.tmpl, tt.content))
		})
	}
}

func TestCategoryContent_InputWins(t *testing.T) {
	p := DefaultProfile()
	tokens := ClassifyPrompt(p, "neon lighting")
	selections := []Selection{
		{Category: "lighting", Value: "golden hour lighting"},
		{Category: "camera", Value: "macro shot"},
	}

	content := categoryContent(p, tokens, selections)
	assert.Equal(t, "neon lighting", content["lighting"])
	assert.Equal(t, "macro shot", content["camera"])
}

func TestCategoryContent_JoinsRepeatedCategories(t *testing.T) {
	p := DefaultProfile()
	tokens := ClassifyPrompt(p, "a cat, a raven")

	content := categoryContent(p, tokens, nil)
	assert.Equal(t, "a cat, a raven", content["subject"])
}

func TestCategoryContent_SkipsEmptySelections(t *testing.T) {
	p := DefaultProfile()

	content := categoryContent(p, nil, []Selection{{Category: "lighting", Value: ""}})
	assert.Empty(t, content["lighting"])
}

func TestJoinByCategory(t *testing.T) {
	p := DefaultProfile()
	content := map[string]string{
		"mood":    "serene",
		"subject": "a cat",
		"camera":  "macro shot",
	}

	// Declaration order, not map order.
	assert.Equal(t, "a cat, macro shot, serene", joinByCategory(p, content))
}

func TestAppendUnclassified(t *testing.T) {
	tokens := []Token{
		{Text: "a cat", Category: "subject"},
		{Text: "ethereal essence"},
		{Text: "floating runes"},
	}

	assert.Equal(t, "rendered output, ethereal essence, floating runes",
		appendUnclassified("rendered output", tokens))
	assert.Equal(t, "ethereal essence, floating runes",
		appendUnclassified("", tokens))
}

func TestDedupPhrases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "exact duplicate",
			in:   "a cat, cinematic, a cat",
			want: "a cat, cinematic",
		},
		{
			name: "case-insensitive duplicate keeps first",
			in:   "Golden Hour, golden hour",
			want: "Golden Hour",
		},
		{
			name: "whitespace-insensitive duplicate",
			in:   "a  cat, a cat",
			want: "a  cat",
		},
		{
			name: "empty segments vanish",
			in:   "a cat, , cinematic",
			want: "a cat, cinematic",
		},
		{
			name: "no duplicates untouched",
			in:   "a cat, cinematic",
			want: "a cat, cinematic",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupPhrases(tt.in))
		})
	}
}

func TestEnforceWordBudget(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWords int
		want     string
	}{
		{
			name:     "under budget untouched",
			in:       "a cat, cinematic",
			maxWords: 10,
			want:     "a cat, cinematic",
		},
		{
			name:     "truncates at budget",
			in:       "one two three four five",
			maxWords: 3,
			want:     "one two three",
		},
		{
			name:     "trailing comma trimmed after cut",
			in:       "a cat, golden hour, masterpiece",
			maxWords: 2,
			want:     "a cat",
		},
		{
			name:     "empty input",
			in:       "",
			maxWords: 5,
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, enforceWordBudget(tt.in, tt.maxWords))
		})
	}
}

func TestApplyAffixes(t *testing.T) {
	tests := []struct {
		name   string
		core   string
		prefix string
		suffix string
		want   string
	}{
		{"no affixes", "a cat", "", "", "a cat"},
		{"prefix only", "a cat", "masterpiece", "", "masterpiece a cat"},
		{"suffix only", "a cat", "", "8k", "a cat 8k"},
		{"both", "a cat", "masterpiece", "8k", "masterpiece a cat 8k"},
		{"affix whitespace trimmed", "a cat", "  masterpiece ", " 8k  ", "masterpiece a cat 8k"},
		{"empty core", "", "masterpiece", "8k", "masterpiece 8k"},
		{"everything empty", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyAffixes(tt.core, tt.prefix, tt.suffix))
		})
	}
}

func TestChooseTemplate_Bounds(t *testing.T) {
	p := DefaultProfile()
	for seed := uint32(0); seed < 100; seed++ {
		rc := newRunContext(p, seed, inputSignature("a cat"))
		idx := chooseTemplate(rc)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(p.Templates))
	}
}

func TestChooseTemplate_NoTemplates(t *testing.T) {
	rc := newRunContext(&Profile{Name: "bare"}, 1, 2)
	assert.Equal(t, 0, chooseTemplate(rc))
}
