package prompt

import (
	"fmt"
	"strings"
)

// Combinations estimates the size of a profile's output space: template
// count times the product of every pool size. float64 because real
// profiles overflow uint64 quickly.
func Combinations(p *Profile) float64 {
	total := float64(len(p.Templates))
	if total == 0 {
		total = 1
	}
	for _, category := range p.Categories {
		if n := len(p.Pools[category]); n > 0 {
			total *= float64(n)
		}
	}
	return total
}

// FormatCombinations renders the estimate exactly below a billion and in
// scientific notation above.
func FormatCombinations(n float64) string {
	if n < 1e9 {
		return fmt.Sprintf("%.0f", n)
	}
	return fmt.Sprintf("%.2e", n)
}

// DescribeProfile renders a plain-text summary of a profile: metadata,
// per-category pool sizes, template and anti-pair counts, rules, and the
// combination estimate.
func DescribeProfile(p *Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Profile: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", p.Description)
	}
	if p.Version != "" {
		fmt.Fprintf(&b, "Version: %s\n", p.Version)
	}
	if p.Type != "" {
		fmt.Fprintf(&b, "Type: %s\n", p.Type)
	}
	if p.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", p.Source)
	}

	fmt.Fprintf(&b, "\nCategories (%d):\n", len(p.Categories))
	for _, category := range p.Categories {
		fmt.Fprintf(&b, "  %-14s %4d entries\n", category, len(p.Pools[category]))
	}

	fmt.Fprintf(&b, "\nTemplates: %d\n", len(p.Templates))
	fmt.Fprintf(&b, "Anti-pair triggers: %d\n", len(p.AntiPairs))

	fmt.Fprintf(&b, "\nRules:\n")
	fmt.Fprintf(&b, "  mandatory:      %s\n", joinOrNone(p.Rules.Mandatory))
	fmt.Fprintf(&b, "  never_override: %s\n", joinOrNone(p.Rules.NeverOverride))
	fmt.Fprintf(&b, "  standard:       %s\n", joinOrNone(p.Rules.Standard))
	fmt.Fprintf(&b, "  optional:       %s\n", joinOrNone(p.Rules.Optional))

	fmt.Fprintf(&b, "\nCombination space: ~%s\n", FormatCombinations(Combinations(p)))
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
