package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildFindingsReport renders an analysis result as a markdown report,
// grouped by catalog category in order of first appearance.
func BuildFindingsReport(result AnalysisResult, teamName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s — Care Gap Report %s\n\n", teamName, result.RunAt.Format("2006-01-02"))

	if len(result.Findings) == 0 {
		b.WriteString("No missing procedures found. All recent orders are scheduled or addressed in notes.\n")
	} else {
		fmt.Fprintf(&b, "**%d procedure(s) ordered but not scheduled:**\n\n", len(result.Findings))
		for _, section := range groupByCategory(result.Findings) {
			fmt.Fprintf(&b, "#### %s\n", section.Category)
			for _, f := range section.Findings {
				fmt.Fprintf(&b, "- **%s** — %s\n  - order: %s\n", f.Item, f.Reason, f.OrderText)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n_%s • run %s_\n", FormatAnalysisSummary(result), shortRunID(result.RunID))
	return b.String()
}

func groupByCategory(findings []Finding) []ReportSection {
	var sections []ReportSection
	index := make(map[string]int)
	for _, f := range findings {
		i, ok := index[f.Category]
		if !ok {
			i = len(sections)
			index[f.Category] = i
			sections = append(sections, ReportSection{Category: f.Category})
		}
		sections[i].Findings = append(sections[i].Findings, f)
	}
	return sections
}

// WriteReportFile writes the report under outputDir and returns the path.
// The filename carries the team, the run date, and a short run id so repeat
// runs on the same day do not overwrite each other.
func WriteReportFile(content, outputDir string, result AnalysisResult, teamName string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s_%s_%s.md",
		sanitizeFilename(teamName), result.RunAt.Format("20060102"), shortRunID(result.RunID))
	path := filepath.Join(outputDir, filename)
	return path, os.WriteFile(path, []byte(content), 0644)
}

func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	return replacer.Replace(s)
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
