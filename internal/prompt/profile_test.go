package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntensity(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Intensity
		wantErr bool
	}{
		{"minimal", "minimal", IntensityMinimal, false},
		{"light", "light", IntensityLight, false},
		{"moderate", "moderate", IntensityModerate, false},
		{"full", "full", IntensityFull, false},
		{"case and whitespace tolerant", "  Moderate ", IntensityModerate, false},
		{"uppercase", "FULL", IntensityFull, false},
		{"unknown", "bogus", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntensity(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown intensity")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntensity_FillRate(t *testing.T) {
	assert.Equal(t, 0.25, IntensityMinimal.FillRate())
	assert.Equal(t, 0.50, IntensityLight.FillRate())
	assert.Equal(t, 0.75, IntensityModerate.FillRate())
	assert.Equal(t, 1.00, IntensityFull.FillRate())

	// Unknown tiers behave like moderate.
	assert.Equal(t, 0.75, Intensity("bogus").FillRate())
}

func TestIntensities_AscendingOrder(t *testing.T) {
	tiers := Intensities()
	require.Len(t, tiers, 4)
	for i := 1; i < len(tiers); i++ {
		assert.Less(t, tiers[i-1].FillRate(), tiers[i].FillRate())
	}
}

func TestProfile_Accessors(t *testing.T) {
	p := DefaultProfile()

	assert.Equal(t, 35, p.PoolSize("lighting"))
	assert.Equal(t, 0, p.PoolSize("nonexistent"))
	assert.True(t, p.HasCategory("subject"))
	assert.False(t, p.HasCategory("nonexistent"))
	assert.True(t, p.IsMandatory("details"))
	assert.False(t, p.IsMandatory("mood"))
	assert.True(t, p.IsNeverOverride("subject"))
	assert.False(t, p.IsNeverOverride("details"))
}

func TestProfile_CloneIsDeep(t *testing.T) {
	p := DefaultProfile()
	c := p.Clone()

	c.Name = "mutant"
	c.Categories[0] = "mutated"
	c.Pools["subject"][0] = "mutated"
	c.Pools["fresh"] = []string{"new"}
	c.Classification["subject"].Keywords[0] = "mutated"
	c.AntiPairs["underwater"][0] = "mutated"
	c.Rules.Mandatory[0] = "mutated"
	c.Templates[0] = "mutated"

	assert.Equal(t, "default", p.Name)
	assert.Equal(t, "subject", p.Categories[0])
	assert.Equal(t, "a woman", p.Pools["subject"][0])
	assert.False(t, p.HasCategory("fresh"))
	assert.Equal(t, "woman", p.Classification["subject"].Keywords[0])
	assert.Equal(t, "sunset", p.AntiPairs["underwater"][0])
	assert.Equal(t, "details", p.Rules.Mandatory[0])
	assert.NotEqual(t, "mutated", p.Templates[0])
}

func TestDefaultProfile_IsValid(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, p.Validate())
	assert.Equal(t, "builtin", p.Type)
	assert.Equal(t,
		[]string{"subject", "action", "environment", "style", "lighting", "camera", "details", "mood"},
		p.Categories)
	assert.Len(t, p.Templates, 8)
}

func validTestProfile() *Profile {
	return &Profile{
		Name:       "test",
		Categories: []string{"subject", "detail"},
		Pools: map[string][]string{
			"subject": {"a lighthouse"},
			"detail":  {"weathered brass"},
		},
		Classification: map[string]Classifier{
			"subject": {Patterns: compilePatterns(`^a `)},
		},
		Templates: []string{"{subject}, {detail}"},
		Rules:     Rules{Mandatory: []string{"detail"}},
		AntiPairs: map[string][]string{"storm": {"calm seas"}},
	}
}

func TestProfile_Validate(t *testing.T) {
	require.NoError(t, validTestProfile().Validate())

	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantMsg string
	}{
		{
			name:    "no pools",
			mutate:  func(p *Profile) { p.Pools = nil; p.Categories = nil },
			wantMsg: "no pools defined",
		},
		{
			name:    "no templates",
			mutate:  func(p *Profile) { p.Templates = nil },
			wantMsg: "no templates defined",
		},
		{
			name:    "empty pool",
			mutate:  func(p *Profile) { p.Pools["detail"] = nil },
			wantMsg: `pool "detail" is empty`,
		},
		{
			name:    "blank pool entry",
			mutate:  func(p *Profile) { p.Pools["detail"] = []string{"weathered brass", "  "} },
			wantMsg: `pool "detail" entry 1 is blank`,
		},
		{
			name:    "category order names unknown pool",
			mutate:  func(p *Profile) { p.Categories = []string{"subject", "detail", "ghost"} },
			wantMsg: `unknown pool "ghost"`,
		},
		{
			name:    "order and pools out of sync",
			mutate:  func(p *Profile) { p.Categories = []string{"subject"} },
			wantMsg: "category order lists 1 entries for 2 pools",
		},
		{
			name:    "template references unknown category",
			mutate:  func(p *Profile) { p.Templates = []string{"{subject}, {nope}"} },
			wantMsg: `template 0 references unknown category "nope"`,
		},
		{
			name:    "classification references unknown category",
			mutate:  func(p *Profile) { p.Classification["ghost"] = Classifier{Keywords: []string{"x"}} },
			wantMsg: `classification references unknown category "ghost"`,
		},
		{
			name:    "rules reference unknown category",
			mutate:  func(p *Profile) { p.Rules.Mandatory = []string{"ghost"} },
			wantMsg: `rules.mandatory references unknown category "ghost"`,
		},
		{
			name:    "never_override references unknown category",
			mutate:  func(p *Profile) { p.Rules.NeverOverride = []string{"ghost"} },
			wantMsg: `rules.never_override references unknown category "ghost"`,
		},
		{
			name:    "blank anti-pair trigger",
			mutate:  func(p *Profile) { p.AntiPairs[" "] = []string{"calm seas"} },
			wantMsg: "anti-pair with blank trigger",
		},
		{
			name:    "blank anti-pair term",
			mutate:  func(p *Profile) { p.AntiPairs["storm"] = []string{""} },
			wantMsg: `anti-pair "storm" term 0 is blank`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validTestProfile()
			tt.mutate(p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), `invalid profile "test"`)
		})
	}
}
