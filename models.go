package main

import "time"

// Order is one catalog-matched line from a pasted orders list.
type Order struct {
	Text       string
	Date       time.Time // zero when the line had no recognizable date
	HasDate    bool
	Item       *CatalogItem
	LineNumber int // 1-based position among non-blank lines
}

// Appointment is one catalog-matched line from a pasted appointments list.
// Appointments carry no date: anything on the list is assumed current.
type Appointment struct {
	Text       string
	Item       *CatalogItem
	LineNumber int
}

// Finding is one missing-procedure record in the final report.
type Finding struct {
	Item      string // canonical catalog name
	Category  string
	OrderText string
	Reason    string
}

// AnalysisResult tracks separate counters for each way an order left the
// pipeline, plus the findings that survived.
type AnalysisResult struct {
	RunID            string
	RunAt            time.Time
	OrdersParsed     int
	AppointmentsSeen int
	RecentOrders     int
	HasAppointment   int
	ExcludedByNotes  int
	Findings         []Finding
}

// ReportSection groups findings under one catalog category for rendering.
type ReportSection struct {
	Category string
	Findings []Finding
}
