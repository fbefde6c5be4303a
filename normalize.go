package main

import (
	"regexp"
	"strings"
)

var (
	strippedCharsRe = regexp.MustCompile(`[^a-z0-9\s/+\-]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// abbreviationRules are applied in order as whole-word substitutions.
// The order matters: "wwo" must detour through the placeholder "wwithout"
// so the earlier "w" and "wo" rules cannot re-expand its output.
var abbreviationRules = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\bcontr\b`), "contrast"},
	{regexp.MustCompile(`\bw\b`), "with"},
	{regexp.MustCompile(`\bwo\b`), "without"},
	{regexp.MustCompile(`\bwwo\b`), "wwithout"},
	{regexp.MustCompile(`\bwwithout\b`), "with without"},
}

// NormalizeText canonicalizes free text for matching: lowercase, strip
// everything but letters, digits, whitespace and the medically meaningful
// / + - characters, collapse whitespace, then expand common abbreviations.
// Running it on its own output is a no-op.
func NormalizeText(text string) string {
	normalized := strings.ToLower(text)
	normalized = strippedCharsRe.ReplaceAllString(normalized, "")
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	for _, rule := range abbreviationRules {
		normalized = rule.re.ReplaceAllString(normalized, rule.replacement)
	}
	return normalized
}
