package main

import "strings"

// ParseOrders turns a pasted multi-line orders list into Order records.
// Blank lines are discarded; line numbers count surviving lines from 1.
// Lines with no catalog match are dropped, but a matched line with no
// extractable date is still an order (undated orders stay actionable).
func ParseOrders(catalog *Catalog, input string) []Order {
	var orders []Order
	for n, line := range nonBlankLines(input) {
		item := FindItem(catalog, line)
		if item == nil {
			continue
		}
		date, hasDate := ExtractDate(line)
		orders = append(orders, Order{
			Text:       strings.TrimSpace(line),
			Date:       date,
			HasDate:    hasDate,
			Item:       item,
			LineNumber: n + 1,
		})
	}
	return orders
}

// ParseAppointments turns a pasted appointments list into Appointment
// records. Same line handling as ParseOrders, no date extraction.
func ParseAppointments(catalog *Catalog, input string) []Appointment {
	var appointments []Appointment
	for n, line := range nonBlankLines(input) {
		item := FindItem(catalog, line)
		if item == nil {
			continue
		}
		appointments = append(appointments, Appointment{
			Text:       strings.TrimSpace(line),
			Item:       item,
			LineNumber: n + 1,
		})
	}
	return appointments
}

func nonBlankLines(input string) []string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
