package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// profileFile is the on-disk shape of a profile. Absent fields inherit
// from the base profile when extends is set.
type profileFile struct {
	Name           string                    `json:"name" yaml:"name"`
	Description    string                    `json:"description" yaml:"description"`
	Version        string                    `json:"version" yaml:"version"`
	Extends        string                    `json:"extends" yaml:"extends"`
	Templates      []string                  `json:"templates" yaml:"templates"`
	Pools          map[string][]string       `json:"pools" yaml:"pools"`
	Classification map[string]classifierFile `json:"classification" yaml:"classification"`
	Rules          *rulesFile                `json:"rules" yaml:"rules"`
	AntiPairs      map[string][]string       `json:"anti_pairs" yaml:"anti_pairs"`
}

type classifierFile struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Patterns []string `json:"patterns" yaml:"patterns"`
}

type rulesFile struct {
	Mandatory     []string `json:"mandatory" yaml:"mandatory"`
	NeverOverride []string `json:"never_override" yaml:"never_override"`
	Standard      []string `json:"standard" yaml:"standard"`
	Optional      []string `json:"optional" yaml:"optional"`
}

// LoadProfileFile loads, merges and validates a profile from a JSON or
// YAML file, following its extends chain.
func LoadProfileFile(path string) (*Profile, error) {
	return loadProfileFile(path, map[string]bool{})
}

func loadProfileFile(path string, visited map[string]bool) (*Profile, error) {
	clean := filepath.Clean(path)
	if visited[clean] {
		return nil, fmt.Errorf("profile inheritance cycle at %s", clean)
	}
	visited[clean] = true

	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	pf, order, err := parseProfile(data, clean)
	if err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", filepath.Base(clean), err)
	}

	var base *Profile
	if pf.Extends != "" {
		base, err = resolveBase(pf.Extends, filepath.Dir(clean), visited)
		if err != nil {
			return nil, fmt.Errorf("resolve base of %s: %w", filepath.Base(clean), err)
		}
	}
	return buildProfile(pf, order, base, clean)
}

// parseProfile decodes the file by extension and extracts the pool key
// order the decoder's map type discards.
func parseProfile(data []byte, path string) (*profileFile, []string, error) {
	var pf profileFile
	var order []string
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err = json.Unmarshal(data, &pf); err != nil {
			return nil, nil, err
		}
		order, err = jsonPoolOrder(data)
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &pf); err != nil {
			return nil, nil, err
		}
		order, err = yamlPoolOrder(data)
	default:
		return nil, nil, fmt.Errorf("unsupported profile format %q (want .json, .yaml, or .yml)", ext)
	}
	if err != nil {
		return nil, nil, err
	}
	return &pf, dedupeStrings(order), nil
}

// resolveBase locates the profile an extends clause names. Files in the
// same directory win over the builtin, so a user default.json shadows the
// embedded vocabulary.
func resolveBase(name, dir string, visited map[string]bool) (*Profile, error) {
	if ext := strings.ToLower(filepath.Ext(name)); ext == ".json" || ext == ".yaml" || ext == ".yml" {
		return loadProfileFile(filepath.Join(dir, name), visited)
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return loadProfileFile(path, visited)
		}
	}
	if strings.EqualFold(name, DefaultProfileName) {
		return DefaultProfile(), nil
	}
	return nil, fmt.Errorf("base profile %q not found in %s", name, dir)
}

// buildProfile merges the wire form onto its base, if any. Scalars win
// when non-empty, templates and rules replace wholesale when present,
// pools replace per category with new categories appended in file order,
// classification and anti-pairs merge per key.
func buildProfile(pf *profileFile, order []string, base *Profile, path string) (*Profile, error) {
	var p *Profile
	if base != nil {
		p = base.Clone()
	} else {
		p = &Profile{
			Pools:          map[string][]string{},
			Classification: map[string]Classifier{},
			AntiPairs:      map[string][]string{},
		}
	}

	if pf.Name != "" {
		p.Name = pf.Name
	} else {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if pf.Description != "" {
		p.Description = pf.Description
	}
	if pf.Version != "" {
		p.Version = pf.Version
	}
	p.Type = "user"
	p.Source = path

	if len(pf.Templates) > 0 {
		p.Templates = append([]string(nil), pf.Templates...)
	}

	for _, category := range order {
		pool := append([]string(nil), pf.Pools[category]...)
		if _, exists := p.Pools[category]; !exists {
			p.Categories = append(p.Categories, category)
		}
		p.Pools[category] = pool
	}

	if len(pf.Classification) > 0 {
		categories := make([]string, 0, len(pf.Classification))
		for category := range pf.Classification {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			c, err := compileClassifier(category, pf.Classification[category])
			if err != nil {
				return nil, err
			}
			p.Classification[category] = c
		}
	}

	if pf.Rules != nil {
		p.Rules = Rules{
			Mandatory:     append([]string(nil), pf.Rules.Mandatory...),
			NeverOverride: append([]string(nil), pf.Rules.NeverOverride...),
			Standard:      append([]string(nil), pf.Rules.Standard...),
			Optional:      append([]string(nil), pf.Rules.Optional...),
		}
	}

	for trigger, terms := range pf.AntiPairs {
		p.AntiPairs[trigger] = append([]string(nil), terms...)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func compileClassifier(category string, cf classifierFile) (Classifier, error) {
	c := Classifier{Keywords: append([]string(nil), cf.Keywords...)}
	for _, expr := range cf.Patterns {
		re, err := regexp.Compile(expr)
		if err != nil {
			return Classifier{}, fmt.Errorf("category %s: bad pattern %q: %w", category, expr, err)
		}
		c.Patterns = append(c.Patterns, re)
	}
	return c, nil
}

// jsonPoolOrder walks the token stream for the top-level pools object and
// records its keys in document order.
func jsonPoolOrder(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("profile root must be an object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		if key != "pools" {
			if err := skipJSONValue(dec); err != nil {
				return nil, err
			}
			continue
		}
		t, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := t.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("pools must be an object")
		}
		var order []string
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, _ := keyTok.(string)
			order = append(order, name)
			if err := skipJSONValue(dec); err != nil {
				return nil, err
			}
		}
		return order, nil
	}
	return nil, nil
}

// skipJSONValue consumes one complete value from the decoder, scalar or
// nested.
func skipJSONValue(dec *json.Decoder) error {
	t, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := t.(json.Delim)
	if !ok {
		return nil
	}
	switch d {
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return err
			}
			if err := skipJSONValue(dec); err != nil {
				return err
			}
		}
		_, err = dec.Token()
		return err
	case '[':
		for dec.More() {
			if err := skipJSONValue(dec); err != nil {
				return err
			}
		}
		_, err = dec.Token()
		return err
	}
	return nil
}

// yamlPoolOrder reads the pools mapping keys in document order from the
// node tree.
func yamlPoolOrder(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("profile root must be a mapping")
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "pools" {
			continue
		}
		pools := root.Content[i+1]
		if pools.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("pools must be a mapping")
		}
		order := make([]string, 0, len(pools.Content)/2)
		for j := 0; j+1 < len(pools.Content); j += 2 {
			order = append(order, pools.Content[j].Value)
		}
		return order, nil
	}
	return nil, nil
}

func dedupeStrings(items []string) []string {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
