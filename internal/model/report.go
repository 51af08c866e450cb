package model

// ReportItem is a single cost as it appears inside a monthly report.
type ReportItem struct {
	Sum         float64
	Description string
	Day         int
}

// Report groups one user's costs for a calendar month by category. Costs
// always holds every category in Categories.
type Report struct {
	UserID string
	Year   int
	Month  int
	Costs  map[Category][]ReportItem
}

// ReportPeriod is a validated year and month.
type ReportPeriod struct {
	Year  int
	Month int
}
