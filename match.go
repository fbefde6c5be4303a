package main

import "strings"

// FindItem returns the catalog item whose variation is contained in the
// normalized text, preferring the longest matching variation so that a
// specific form ("mri brain with contrast") out-ranks a generic one ("mri").
// Term pairs compete as synthetic candidates whose length is the combined
// label length. Returns nil when nothing matches.
func FindItem(catalog *Catalog, text string) *CatalogItem {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}

	var best *CatalogItem
	bestLen := 0

	for i := range catalog.Items {
		item := &catalog.Items[i]
		for _, variation := range item.normalizedVariations {
			if strings.Contains(normalized, variation) && len(variation) > bestLen {
				best = item
				bestLen = len(variation)
			}
		}
		for _, pair := range item.normalizedPairs {
			if strings.Contains(normalized, pair.A) && strings.Contains(normalized, pair.B) {
				if n := len(pair.Label()); n > bestLen {
					best = item
					bestLen = n
				}
			}
		}
	}
	return best
}
