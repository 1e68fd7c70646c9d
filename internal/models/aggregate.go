package models

import "github.com/shopspring/decimal"

// CategoryBucket accumulates one employee's sales within one category.
type CategoryBucket struct {
	Quantity    float64 `json:"qty"`
	AmountMinor int64   `json:"-"`
}

// SumUAH returns the bucket amount in hryvnias.
func (b CategoryBucket) SumUAH() decimal.Decimal {
	return MinorToUAH(b.AmountMinor)
}

// EmployeeAggregate is the per-employee fold of normalized positions that
// matched a category filter.
type EmployeeAggregate struct {
	EmployeeID    int64
	Name          string
	TotalQuantity float64
	TotalMinor    int64
	Categories    map[int64]*CategoryBucket
}

// TotalUAH returns the employee grand total in hryvnias.
func (a *EmployeeAggregate) TotalUAH() decimal.Decimal {
	return MinorToUAH(a.TotalMinor)
}

// CategoryAggregate is one row of the vendor's own category-level report,
// the computation path independent of transaction parsing.
type CategoryAggregate struct {
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Count      float64         `json:"count"`
	SumUAH     decimal.Decimal `json:"sum_uah"`
}

// ShotRow is one product's contribution to the coffee shot (zakladka)
// report. PerUnit comes from the externally configured shot table.
type ShotRow struct {
	ProductID  int64   `json:"product_id"`
	Name       string  `json:"name"`
	CategoryID *int64  `json:"category_id"`
	Quantity   float64 `json:"qty"`
	PerUnit    int64   `json:"zakladki_per_unit"`
	Total      float64 `json:"zakladki_total"`
}

// ShotSummary is the coffee shot report: totals plus per-product rows sorted
// by quantity descending.
type ShotSummary struct {
	TotalQuantity float64   `json:"total_qty"`
	TotalZakladki float64   `json:"total_zakladki"`
	ByProduct     []ShotRow `json:"by_product"`
}

// WaiterSalesRow is one normalized row of the vendor's per-employee sales
// report. RevenueMinor is in minor units; MiddleInvoice is the vendor's own
// average receipt value, already in hryvnias.
type WaiterSalesRow struct {
	UserID        int64           `json:"user_id"`
	Name          string          `json:"name"`
	RevenueMinor  int64           `json:"revenue"`
	Clients       int64           `json:"clients"`
	MiddleInvoice decimal.Decimal `json:"middle_invoice"`
}
