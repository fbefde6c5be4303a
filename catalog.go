package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogItem is one canonical procedure or provider type plus the textual
// surface forms that should be recognized as referring to it.
type CatalogItem struct {
	Canonical  string     `yaml:"canonical"`
	Category   string     `yaml:"category"`
	Variations []string   `yaml:"variations"`
	TermPairs  []TermPair `yaml:"term_pairs"`

	// Normalized forms, precomputed once at load. Normalization is
	// deterministic so this never changes observable matching behavior.
	normalizedVariations []string
	normalizedPairs      []TermPair
}

// TermPair is a compound matching criterion: both terms must appear somewhere
// in the text, in any order, with arbitrary text between them. This covers
// phrasing like "EMG/NCS of the upper extremities" that no single contiguous
// variation string would ever match.
type TermPair struct {
	A string
	B string
}

// Label is the synthetic surface form a pair competes with against plain
// variation matches; its length is the pair's match length.
func (p TermPair) Label() string {
	return p.A + " " + p.B
}

func (p *TermPair) UnmarshalYAML(value *yaml.Node) error {
	var terms []string
	if err := value.Decode(&terms); err != nil {
		return err
	}
	if len(terms) != 2 {
		return fmt.Errorf("term pair must have exactly 2 terms, got %d", len(terms))
	}
	p.A = terms[0]
	p.B = terms[1]
	return nil
}

// Catalog is the read-only reference data a reconciliation run matches
// against. It is loaded once by the surrounding application and passed
// explicitly into every matching call.
type Catalog struct {
	Items []CatalogItem `yaml:"items"`
}

// LoadCatalog reads and validates a yaml catalog file and precomputes the
// normalized form of every variation and pair term.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.precompute()
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("catalog has no items")
	}
	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		if item.Canonical == "" {
			return fmt.Errorf("catalog item %d has no canonical name", i+1)
		}
		if seen[item.Canonical] {
			return fmt.Errorf("duplicate catalog item '%s'", item.Canonical)
		}
		seen[item.Canonical] = true
		if len(item.Variations) == 0 {
			return fmt.Errorf("catalog item '%s' has no variations", item.Canonical)
		}
		for _, v := range item.Variations {
			if NormalizeText(v) == "" {
				return fmt.Errorf("catalog item '%s' has an empty variation", item.Canonical)
			}
		}
		for _, p := range item.TermPairs {
			if NormalizeText(p.A) == "" || NormalizeText(p.B) == "" {
				return fmt.Errorf("catalog item '%s' has an empty term pair component", item.Canonical)
			}
		}
	}
	return nil
}

func (c *Catalog) precompute() {
	for i := range c.Items {
		item := &c.Items[i]
		item.normalizedVariations = make([]string, len(item.Variations))
		for j, v := range item.Variations {
			item.normalizedVariations[j] = NormalizeText(v)
		}
		item.normalizedPairs = make([]TermPair, len(item.TermPairs))
		for j, p := range item.TermPairs {
			item.normalizedPairs[j] = TermPair{A: NormalizeText(p.A), B: NormalizeText(p.B)}
		}
	}
}

// NewCatalog builds a catalog from in-memory items, for callers and tests
// that do not load from a file.
func NewCatalog(items []CatalogItem) *Catalog {
	c := &Catalog{Items: items}
	c.precompute()
	return c
}
