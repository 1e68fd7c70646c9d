package dto

import (
	"github.com/Greco-cyber/poster-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// HealthResponse reports liveness.
type HealthResponse struct {
	OK bool   `json:"ok"`
	TS string `json:"ts"`
}

// WaitersSalesResponse wraps the vendor's per-employee sales rows.
type WaitersSalesResponse struct {
	Response []models.WaiterSalesRow `json:"response"`
}

// MenuCategoriesResponse wraps the vendor menu category listing.
type MenuCategoriesResponse struct {
	Response []models.MenuCategory `json:"response"`
}

// BarSalesResponse is the assembled bar report.
type BarSalesResponse struct {
	DateFrom   string             `json:"dateFrom"`
	DateTo     string             `json:"dateTo"`
	Categories []BarCategoryRow   `json:"categories"`
	Coffee     models.ShotSummary `json:"coffee"`
	Debug      BarDebug           `json:"debug"`
}

// BarCategoryRow is one bar category's vendor-reported totals.
type BarCategoryRow struct {
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Qty        float64         `json:"qty"`
	SumUAH     decimal.Decimal `json:"sum_uah"`
}

// BarDebug carries operator-facing diagnostics.
type BarDebug struct {
	UsedTransactions *models.Candidate `json:"usedTransactions"`
}

// WaitersCategoriesResponse pairs the per-employee fold with the vendor's
// own category totals.
type WaitersCategoriesResponse struct {
	Response []EmployeeRow `json:"response"`
	Overall  []OverallRow  `json:"overall"`
}

// EmployeeRow is one employee's totals within the requested categories.
// The categories map is keyed by category id.
type EmployeeRow struct {
	UserID     int64                  `json:"user_id"`
	Name       string                 `json:"name"`
	TotalQty   float64                `json:"total_qty"`
	TotalUAH   decimal.Decimal        `json:"total_uah"`
	Categories map[int64]CategoryCell `json:"categories"`
}

// CategoryCell is one employee's totals within one category.
type CategoryCell struct {
	Qty    float64         `json:"qty"`
	SumUAH decimal.Decimal `json:"sum_uah"`
}

// OverallRow is one category's totals from the vendor's own report.
type OverallRow struct {
	CategoryID int64           `json:"category_id"`
	Count      float64         `json:"count"`
	SumUAH     decimal.Decimal `json:"sum_uah"`
	Name       string          `json:"name"`
}

// NewEmployeeRow converts an aggregate into its response shape.
func NewEmployeeRow(agg models.EmployeeAggregate) EmployeeRow {
	row := EmployeeRow{
		UserID:     agg.EmployeeID,
		Name:       agg.Name,
		TotalQty:   agg.TotalQuantity,
		TotalUAH:   agg.TotalUAH(),
		Categories: make(map[int64]CategoryCell, len(agg.Categories)),
	}
	for cid, bucket := range agg.Categories {
		row.Categories[cid] = CategoryCell{
			Qty:    bucket.Quantity,
			SumUAH: bucket.SumUAH(),
		}
	}
	return row
}

// NewBarCategoryRow converts a vendor category aggregate into its response
// shape.
func NewBarCategoryRow(agg models.CategoryAggregate) BarCategoryRow {
	return BarCategoryRow{
		CategoryID: agg.CategoryID,
		Name:       agg.Name,
		Qty:        agg.Count,
		SumUAH:     agg.SumUAH,
	}
}

// NewOverallRow converts a vendor category aggregate into its response
// shape.
func NewOverallRow(agg models.CategoryAggregate) OverallRow {
	return OverallRow{
		CategoryID: agg.CategoryID,
		Count:      agg.Count,
		SumUAH:     agg.SumUAH,
		Name:       agg.Name,
	}
}
