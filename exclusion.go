package main

import "strings"

// exclusionWindowChars is the symmetric proximity window, in characters of
// normalized text, scanned around an item mention for exclusion phrases.
const exclusionWindowChars = 100

// exclusionPhrases indicate a procedure was already addressed, refused, or
// is inapplicable. The list is fixed reference data; phrases are matched in
// normalized form inside the proximity window.
var exclusionPhrases = []string{
	"refused",
	"declined",
	"patient refused",
	"pt refused",
	"patient declined",
	"pt declined",
	"has own",
	"has their own",
	"outside",
	"established with",
	"established w/",
	"not candidate",
	"contraindicated",
	"already done",
	"completed",
	"done elsewhere",
	"done at outside",
	"seeing elsewhere",
	"seeing outside",
	"won't do",
	"will not do",
	"does not want",
	"doesn't want",
}

var normalizedExclusionPhrases = normalizePhrases(exclusionPhrases)

func normalizePhrases(phrases []string) []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = NormalizeText(p)
	}
	return out
}

// IsExcluded reports whether the clinical notes indicate the item should not
// be counted as missing. Only the first occurrence of each variation is
// checked: a later mention sitting next to an exclusion phrase is not seen.
// That is the minimal guarantee the product promises, and it is pinned by a
// test rather than silently widened.
func IsExcluded(notes string, item *CatalogItem) bool {
	normalizedNotes := NormalizeText(notes)
	if normalizedNotes == "" {
		return false
	}

	mentioned := false
	for _, variation := range item.normalizedVariations {
		if strings.Contains(normalizedNotes, variation) {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return false
	}

	for _, variation := range item.normalizedVariations {
		idx := strings.Index(normalizedNotes, variation)
		if idx < 0 {
			continue
		}
		start := idx - exclusionWindowChars
		if start < 0 {
			start = 0
		}
		end := idx + len(variation) + exclusionWindowChars
		if end > len(normalizedNotes) {
			end = len(normalizedNotes)
		}
		window := normalizedNotes[start:end]
		for _, phrase := range normalizedExclusionPhrases {
			if strings.Contains(window, phrase) {
				return true
			}
		}
	}
	return false
}
