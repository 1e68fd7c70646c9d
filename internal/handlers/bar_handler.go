package handlers

import (
	"net/http"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/dto"
	apierrors "github.com/Greco-cyber/poster-dashboard/internal/errors"
	"github.com/Greco-cyber/poster-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// BarHandler serves the bar sales report.
type BarHandler struct {
	reporter services.BarReporter
	loc      *time.Location
}

// NewBarHandler creates a new bar report handler.
func NewBarHandler(reporter services.BarReporter, loc *time.Location) *BarHandler {
	return &BarHandler{reporter: reporter, loc: loc}
}

// BarSales assembles the bar report: the vendor's own totals for the
// configured bar categories plus the coffee shot summary derived from
// transaction detail.
//
// Method: GET /api/bar-sales
//
// Query parameters:
//   - dateFrom: YYYYMMDD (optional, defaults to today)
//   - dateTo: YYYYMMDD (optional, defaults to dateFrom)
//
// Success Response: 200 OK
//   - dateFrom, dateTo: Resolved date range
//   - categories: Array of bar category totals
//   - coffee: Shot summary (total_qty, total_zakladki, by_product)
//   - debug.usedTransactions: Transaction source that supplied detail,
//     null when none did
//
// Error Responses:
//   - 400: Malformed date parameters
//   - 500: POSTER_TOKEN not configured
//   - 502/504: Vendor failure
func (h *BarHandler) BarSales(c echo.Context) error {
	var query dto.DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, validationCode(err), apierrors.WithDetails(err.Error()))
	}

	dateFrom, dateTo := resolveDateRange(query, h.loc)

	report, err := h.reporter.BarSales(c.Request().Context(), dateFrom, dateTo)
	if err != nil {
		return SendVendorError(c, err)
	}

	response := dto.BarSalesResponse{
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Categories: make([]dto.BarCategoryRow, 0, len(report.Categories)),
		Coffee:     report.Coffee,
		Debug:      dto.BarDebug{UsedTransactions: report.Used},
	}
	for _, agg := range report.Categories {
		response.Categories = append(response.Categories, dto.NewBarCategoryRow(agg))
	}

	return c.JSON(http.StatusOK, response)
}
