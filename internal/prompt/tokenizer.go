package prompt

import (
	"regexp"
	"strings"
)

// Token is one delimited phrase of the input prompt. Category is empty for
// phrases no classifier matched; those pass through to the output verbatim,
// which is what keeps trigger tokens and arbitrary user text intact.
type Token struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}

// Classified reports whether the token was routed into a category.
func (t Token) Classified() bool { return t.Category != "" }

// phraseDelims splits within comma segments on " - " and " | " without
// touching hyphens inside words.
var phraseDelims = regexp.MustCompile(`\s+-\s+|\s+\|\s+`)

// SplitPhrases splits a prompt into trimmed phrases: commas first, then the
// secondary separators. Empty segments are dropped.
func SplitPhrases(prompt string) []string {
	var phrases []string
	for _, segment := range strings.Split(prompt, ",") {
		for _, phrase := range phraseDelims.Split(segment, -1) {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				phrases = append(phrases, phrase)
			}
		}
	}
	return phrases
}

// ClassifyPrompt tokenizes a prompt and routes every phrase into at most
// one category. Categories are tried in profile declaration order, keywords
// before patterns, and the first match wins. Output preserves the original
// phrase order.
func ClassifyPrompt(p *Profile, prompt string) []Token {
	phrases := SplitPhrases(prompt)
	tokens := make([]Token, 0, len(phrases))
	for _, phrase := range phrases {
		tokens = append(tokens, Token{Text: phrase, Category: classifyPhrase(p, phrase)})
	}
	return tokens
}

func classifyPhrase(p *Profile, phrase string) string {
	lower := strings.ToLower(phrase)
	for _, category := range p.Categories {
		cls, ok := p.Classification[category]
		if !ok {
			continue
		}
		for _, keyword := range cls.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				return category
			}
		}
		for _, pattern := range cls.Patterns {
			if pattern.MatchString(lower) {
				return category
			}
		}
	}
	return ""
}
