package main

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "MRI Brain", "mri brain"},
		{"collapse whitespace", "mri   brain\t scan", "mri brain scan"},
		{"trim", "  eeg  ", "eeg"},
		{"strip punctuation", "neurology, f/u (urgent)!", "neurology f/u urgent"},
		{"keeps medical chars", "c-spine w/o contrast 3+", "c-spine with/o contrast 3+"},
		{"contr expansion", "mri brain with contr.", "mri brain with contrast"},
		{"standalone w expands", "mri w contrast", "mri with contrast"},
		{"standalone wo expands", "mri wo contrast", "mri without contrast"},
		{"wwo expands once", "mri brain wwo contrast", "mri brain with without contrast"},
		{"empty", "", ""},
		{"only punctuation", "...!?", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeText(tc.input)
			if got != tc.want {
				t.Fatalf("NormalizeText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeTextWordBoundaries(t *testing.T) {
	// "w" inside another word must not expand.
	if got := NormalizeText("raw data"); got != "raw data" {
		t.Fatalf("embedded w expanded: %q", got)
	}
	if got := NormalizeText("wonder"); got != "wonder" {
		t.Fatalf("embedded wo expanded: %q", got)
	}
	if got := NormalizeText("w"); got != "with" {
		t.Fatalf("standalone w not expanded: %q", got)
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"MRI Brain w/ Contrast ordered 1/15/2024",
		"ct head wwo contr",
		"pt  declined , follow-up",
		"EMG/NCS of the upper extremities",
		"a , b",
		"",
	}
	for _, s := range inputs {
		once := NormalizeText(s)
		twice := NormalizeText(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}
