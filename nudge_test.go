package main

import (
	"strings"
	"testing"
)

func TestReminderMessage(t *testing.T) {
	cfg := Config{ReportChannelID: "C123456"}
	msg := reminderMessage(cfg)
	if !strings.Contains(msg, "/gapcheck") {
		t.Fatalf("reminder must mention the command: %q", msg)
	}
	if !strings.Contains(msg, "<#C123456>") {
		t.Fatalf("reminder must reference the report channel: %q", msg)
	}
	if !strings.Contains(msg, "6 months") {
		t.Fatalf("reminder must state the recency window: %q", msg)
	}

	msg = reminderMessage(Config{})
	if strings.Contains(msg, "<#") {
		t.Fatalf("reminder without a channel must not reference one: %q", msg)
	}
}

func TestIsLikelySlackID(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"U1234567890", true},
		{"W1234567890", true},
		{"Dana Ortiz", false},
		{"U12", false},
		{"X1234567890", false},
		{"u1234567890", false},
	}
	for _, tc := range tests {
		if got := isLikelySlackID(tc.val); got != tc.want {
			t.Fatalf("isLikelySlackID(%q) = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestUniqueStrings(t *testing.T) {
	got := uniqueStrings([]string{"a", "b", "a", "", "c", "b"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected uniqueStrings result: %v", got)
	}
}
