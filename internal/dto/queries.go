package dto

// Query DTOs for the report endpoints. Dates travel as YYYYMMDD, matching
// the vendor's own wire convention; empty values default to "today" in the
// configured reporting timezone.

// DateRangeQuery is the shared date range of every report endpoint.
type DateRangeQuery struct {
	DateFrom string `query:"dateFrom" validate:"omitempty,ymd_date"`
	DateTo   string `query:"dateTo" validate:"omitempty,ymd_date"`
}

// WaitersCategoriesQuery scopes the per-employee report to a set of
// category ids, optionally widened by product name keywords.
type WaitersCategoriesQuery struct {
	DateRangeQuery
	Cats     string `query:"cats" validate:"required,category_list"`
	Keywords string `query:"keywords"`
}

// DebugQuery bounds the diagnostic position sample.
type DebugQuery struct {
	DateRangeQuery
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=500"`
}
