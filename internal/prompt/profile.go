// Package prompt implements the deterministic prompt augmentation engine.
//
// The pipeline is: tokenize -> classify -> find gaps -> hash-select fillers
// -> enforce anti-pairing -> assemble via template -> deduplicate -> enforce
// the word budget. Every choice is a pure function of (prompt, seed,
// intensity, profile), so identical inputs always produce identical output
// with no randomness and no model calls.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// Intensity names a fill-rate tier controlling what fraction of missing
// categories get filled in one run.
type Intensity string

const (
	IntensityMinimal  Intensity = "minimal"
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityFull     Intensity = "full"
)

// Intensities returns all tiers in ascending fill-rate order.
func Intensities() []Intensity {
	return []Intensity{IntensityMinimal, IntensityLight, IntensityModerate, IntensityFull}
}

// FillRate returns the fraction of missing categories this tier fills.
// Unknown tiers report the moderate rate.
func (i Intensity) FillRate() float64 {
	switch i {
	case IntensityMinimal:
		return 0.25
	case IntensityLight:
		return 0.50
	case IntensityModerate:
		return 0.75
	case IntensityFull:
		return 1.00
	default:
		return 0.75
	}
}

// Valid reports whether i is one of the defined tiers.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityMinimal, IntensityLight, IntensityModerate, IntensityFull:
		return true
	}
	return false
}

// ParseIntensity converts a user-supplied string into an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	in := Intensity(strings.ToLower(strings.TrimSpace(s)))
	if !in.Valid() {
		return "", fmt.Errorf("unknown intensity %q (want minimal, light, moderate or full)", s)
	}
	return in, nil
}

// Classifier holds the matching rules that route an input phrase into one
// category: case-insensitive keyword containment first, then compiled
// patterns matched against the lowered phrase.
type Classifier struct {
	Keywords []string
	Patterns []*regexp.Regexp
}

// Rules partitions a profile's categories by fill policy. Mandatory
// categories are filled whenever missing, regardless of intensity.
// Never-override categories keep the user's phrasing when present in the
// input. Standard and optional partition the rest; the split is
// informational for profile authors and introspection.
type Rules struct {
	Mandatory     []string
	NeverOverride []string
	Standard      []string
	Optional      []string
}

// Profile is an immutable vocabulary bundle: candidate pools per category,
// classification rules, assembly templates, fill rules and the anti-pair
// incompatibility table. Profiles are built by the loader (or embedded) and
// must not be mutated after publication; the engine only reads them, so
// concurrent runs need no locking.
type Profile struct {
	Name        string
	Description string
	Version     string
	Type        string

	// Categories lists the pool names in declaration order. The order is
	// load-bearing: it drives classification precedence, gap ordering and
	// stays stable across loads of the same content.
	Categories []string

	// Pools maps each category to its ordered candidate values. Entry
	// order defines the index-to-value mapping of coordinate hashing.
	Pools map[string][]string

	Classification map[string]Classifier
	Templates      []string
	Rules          Rules

	// AntiPairs maps a trigger substring to the terms that may not appear
	// in any candidate once the trigger is present in the run.
	AntiPairs map[string][]string

	// Source is the file the profile was loaded from, empty for the
	// embedded default.
	Source string
}

// PoolSize returns the number of candidates for a category, 0 when the
// category is unknown.
func (p *Profile) PoolSize(category string) int {
	return len(p.Pools[category])
}

// HasCategory reports whether the profile declares a pool for category.
func (p *Profile) HasCategory(category string) bool {
	_, ok := p.Pools[category]
	return ok
}

// IsMandatory reports whether category is always filled when missing.
func (p *Profile) IsMandatory(category string) bool {
	return containsString(p.Rules.Mandatory, category)
}

// IsNeverOverride reports whether input content for category is kept
// untouched.
func (p *Profile) IsNeverOverride(category string) bool {
	return containsString(p.Rules.NeverOverride, category)
}

// Clone returns a deep copy of the profile. Compiled patterns are shared;
// they are immutable once built.
func (p *Profile) Clone() *Profile {
	c := &Profile{
		Name:        p.Name,
		Description: p.Description,
		Version:     p.Version,
		Type:        p.Type,
		Categories:  append([]string(nil), p.Categories...),
		Templates:   append([]string(nil), p.Templates...),
		Source:      p.Source,
	}
	c.Pools = make(map[string][]string, len(p.Pools))
	for k, v := range p.Pools {
		c.Pools[k] = append([]string(nil), v...)
	}
	c.Classification = make(map[string]Classifier, len(p.Classification))
	for k, v := range p.Classification {
		c.Classification[k] = Classifier{
			Keywords: append([]string(nil), v.Keywords...),
			Patterns: append([]*regexp.Regexp(nil), v.Patterns...),
		}
	}
	c.AntiPairs = make(map[string][]string, len(p.AntiPairs))
	for k, v := range p.AntiPairs {
		c.AntiPairs[k] = append([]string(nil), v...)
	}
	c.Rules = Rules{
		Mandatory:     append([]string(nil), p.Rules.Mandatory...),
		NeverOverride: append([]string(nil), p.Rules.NeverOverride...),
		Standard:      append([]string(nil), p.Rules.Standard...),
		Optional:      append([]string(nil), p.Rules.Optional...),
	}
	return c
}

// Validate checks the structural invariants the engine relies on: templates
// and pools present, every pool non-empty with non-empty entries, and every
// category referenced by templates, rules or classification resolving to a
// pool. All violations are collected into one error.
func (p *Profile) Validate() error {
	var violations []string

	if len(p.Pools) == 0 {
		violations = append(violations, "no pools defined")
	}
	if len(p.Templates) == 0 {
		violations = append(violations, "no templates defined")
	}

	if len(p.Categories) != len(p.Pools) {
		violations = append(violations, fmt.Sprintf(
			"category order lists %d entries for %d pools", len(p.Categories), len(p.Pools)))
	}
	for _, category := range p.Categories {
		if !p.HasCategory(category) {
			violations = append(violations, fmt.Sprintf("category order names unknown pool %q", category))
		}
	}

	for _, category := range p.Categories {
		pool := p.Pools[category]
		if len(pool) == 0 {
			violations = append(violations, fmt.Sprintf("pool %q is empty", category))
		}
		for i, entry := range pool {
			if strings.TrimSpace(entry) == "" {
				violations = append(violations, fmt.Sprintf("pool %q entry %d is blank", category, i))
			}
		}
	}

	for i, template := range p.Templates {
		for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
			if !p.HasCategory(m[1]) {
				violations = append(violations, fmt.Sprintf(
					"template %d references unknown category %q", i, m[1]))
			}
		}
	}

	for category := range p.Classification {
		if !p.HasCategory(category) {
			violations = append(violations, fmt.Sprintf("classification references unknown category %q", category))
		}
	}

	for _, set := range []struct {
		name       string
		categories []string
	}{
		{"mandatory", p.Rules.Mandatory},
		{"never_override", p.Rules.NeverOverride},
		{"standard", p.Rules.Standard},
		{"optional", p.Rules.Optional},
	} {
		for _, category := range set.categories {
			if !p.HasCategory(category) {
				violations = append(violations, fmt.Sprintf(
					"rules.%s references unknown category %q", set.name, category))
			}
		}
	}

	for trigger, terms := range p.AntiPairs {
		if strings.TrimSpace(trigger) == "" {
			violations = append(violations, "anti-pair with blank trigger")
		}
		for i, term := range terms {
			if strings.TrimSpace(term) == "" {
				violations = append(violations, fmt.Sprintf("anti-pair %q term %d is blank", trigger, i))
			}
		}
	}

	if len(violations) > 0 {
		return fmt.Errorf("invalid profile %q: %s", p.Name, strings.Join(violations, "; "))
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
