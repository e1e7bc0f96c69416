package models

// ReportCounters are folded from the per-event stats rows: TotalEvents is
// the row count, the other two are column sums with null counted as 0.
type ReportCounters struct {
	TotalEvents  int   `json:"totalEvents"`
	TicketsSold  int64 `json:"ticketsSold"`
	UniqueBuyers int64 `json:"uniqueBuyers"`
}

// ReportSummary is the dashboard payload: counters plus the two raw view
// result sets. The sets come from independent queries and may disagree if
// the underlying views do; no cross-validation is performed.
type ReportSummary struct {
	Counters ReportCounters `json:"counters"`
	PerEvent []Row          `json:"perEvent"`
	Daily    []Row          `json:"daily"`
}
