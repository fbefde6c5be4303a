package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

const reasonNoAppointment = "No appointment found"

// AnalyzeMissingProcedures reconciles the three pasted text blocks against
// the catalog and returns every distinct procedure that was ordered in the
// recent window but has no appointment and is not excluded by the notes.
// now is injected so recency is reproducible; the catalog is read-only.
func AnalyzeMissingProcedures(catalog *Catalog, ordersText, appointmentsText, notesText string, now time.Time) AnalysisResult {
	result := AnalysisResult{
		RunID: uuid.NewString(),
		RunAt: now,
	}

	orders := ParseOrders(catalog, ordersText)
	appointments := ParseAppointments(catalog, appointmentsText)
	result.OrdersParsed = len(orders)
	result.AppointmentsSeen = len(appointments)

	scheduled := make(map[string]bool, len(appointments))
	for _, apt := range appointments {
		scheduled[apt.Item.Canonical] = true
	}

	// Findings are unique by canonical name, first occurrence wins; the
	// ordered slice preserves order of detection while the set tracks
	// membership in a single pass.
	reported := make(map[string]bool)

	for _, order := range orders {
		// An order with no extractable date stays in: dropping it
		// silently would hide a possible care gap.
		if order.HasDate && !IsOrderRecent(order.Date, now) {
			continue
		}
		result.RecentOrders++

		canonical := order.Item.Canonical
		if scheduled[canonical] {
			result.HasAppointment++
			continue
		}
		if IsExcluded(notesText, order.Item) {
			result.ExcludedByNotes++
			continue
		}
		if reported[canonical] {
			continue
		}
		reported[canonical] = true

		category := order.Item.Category
		if category == "" {
			category = "unknown"
		}
		result.Findings = append(result.Findings, Finding{
			Item:      canonical,
			Category:  category,
			OrderText: order.Text,
			Reason:    reasonNoAppointment,
		})
	}

	log.Printf("analysis run=%s orders=%d appointments=%d recent=%d scheduled=%d excluded=%d findings=%d",
		result.RunID, result.OrdersParsed, result.AppointmentsSeen, result.RecentOrders,
		result.HasAppointment, result.ExcludedByNotes, len(result.Findings))
	return result
}

// FormatAnalysisSummary returns a one-line human-readable summary of a run.
func FormatAnalysisSummary(result AnalysisResult) string {
	if result.OrdersParsed == 0 {
		return "No orders recognized against the catalog."
	}
	var parts []string
	parts = append(parts, fmt.Sprintf("%d orders matched", result.OrdersParsed))
	if skipped := result.OrdersParsed - result.RecentOrders; skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d older than %d months", skipped, recentWindowMonths))
	}
	if result.HasAppointment > 0 {
		parts = append(parts, fmt.Sprintf("%d already scheduled", result.HasAppointment))
	}
	if result.ExcludedByNotes > 0 {
		parts = append(parts, fmt.Sprintf("%d addressed in notes", result.ExcludedByNotes))
	}
	summary := strings.Join(parts, ", ")
	if len(result.Findings) == 0 {
		return fmt.Sprintf("%s. No missing procedures found.", summary)
	}
	return fmt.Sprintf("%s. *%d missing procedure(s) found.*", summary, len(result.Findings))
}
