package models

import "net/url"

// Candidate is one (vendor method, parameter variant) pair the transaction
// fetcher may try. The vendor's public behavior differs across accounts, so
// candidates are attempted in a fixed priority order.
type Candidate struct {
	Method string     `json:"method"`
	Params url.Values `json:"params"`
}

// BarReport is the assembled bar sales report: the vendor's own category
// totals for the configured bar categories, the coffee shot summary derived
// from transaction parsing, and the candidate that supplied transaction
// detail (nil when none did).
type BarReport struct {
	Categories []CategoryAggregate
	Coffee     ShotSummary
	Used       *Candidate
}

// WaitersCategoriesReport pairs the per-employee fold with the independent
// category-level totals. Overall is empty when the vendor report failed;
// that is a degraded result, not an error.
type WaitersCategoriesReport struct {
	Employees []EmployeeAggregate
	Overall   []CategoryAggregate
	Used      *Candidate
}

// DebugSample is a diagnostic slice of parsed positions for operator
// troubleshooting of field resolution.
type DebugSample struct {
	Used         *Candidate           `json:"used"`
	Transactions int                  `json:"transactions"`
	Positions    []NormalizedPosition `json:"positions"`
}
