package services

import (
	"context"

	"github.com/Greco-cyber/poster-dashboard/internal/models"
)

// ProductLookup is the read side of the product reference cache. Lookups
// never trigger a fetch; callers refresh explicitly via EnsureFresh.
type ProductLookup interface {
	Get(productID int64) (models.ProductRef, bool)
}

// WaitersSalesProvider serves the vendor's per-employee sales report.
type WaitersSalesProvider interface {
	WaitersSales(ctx context.Context, dateFrom, dateTo string) ([]models.WaiterSalesRow, error)
}

// MenuProvider serves the vendor's menu category listing.
type MenuProvider interface {
	Categories(ctx context.Context) ([]models.MenuCategory, error)
}

// BarReporter assembles the bar sales report (category totals plus the
// coffee shot summary).
type BarReporter interface {
	BarSales(ctx context.Context, dateFrom, dateTo string) (*models.BarReport, error)
}

// WaitersCategoriesReporter assembles the per-employee per-category report.
type WaitersCategoriesReporter interface {
	WaitersCategories(ctx context.Context, dateFrom, dateTo string, cats []int64, keywords []string) (*models.WaitersCategoriesReport, error)
}

// DebugSampler exposes parsed transaction positions for troubleshooting.
type DebugSampler interface {
	DebugTransactions(ctx context.Context, dateFrom, dateTo string, limit int) (*models.DebugSample, error)
}
