package handlers

import (
	"net/http"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/dto"
	apierrors "github.com/Greco-cyber/poster-dashboard/internal/errors"
	"github.com/Greco-cyber/poster-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// SalesHandler serves the per-employee sales reports.
type SalesHandler struct {
	sales      services.WaitersSalesProvider
	categories services.WaitersCategoriesReporter
	loc        *time.Location
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(
	sales services.WaitersSalesProvider,
	categories services.WaitersCategoriesReporter,
	loc *time.Location,
) *SalesHandler {
	return &SalesHandler{
		sales:      sales,
		categories: categories,
		loc:        loc,
	}
}

// WaitersSales proxies the vendor's per-employee sales report.
//
// Method: GET /api/waiters-sales
//
// Query parameters:
//   - dateFrom: YYYYMMDD (optional, defaults to today)
//   - dateTo: YYYYMMDD (optional, defaults to dateFrom)
//
// Success Response: 200 OK
//   - response: Array of per-employee rows (user_id, name, revenue,
//     clients, middle_invoice)
//
// Error Responses:
//   - 400: Malformed date parameters
//   - 500: POSTER_TOKEN not configured
//   - 502/504: Vendor failure
func (h *SalesHandler) WaitersSales(c echo.Context) error {
	var query dto.DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, validationCode(err), apierrors.WithDetails(err.Error()))
	}

	dateFrom, dateTo := resolveDateRange(query, h.loc)

	rows, err := h.sales.WaitersSales(c.Request().Context(), dateFrom, dateTo)
	if err != nil {
		return SendVendorError(c, err)
	}

	return c.JSON(http.StatusOK, dto.WaitersSalesResponse{Response: rows})
}

// WaitersCategories folds transaction detail into per-employee category
// totals and pairs it with the vendor's own category report.
//
// Method: GET /api/waiters-categories
//
// Query parameters:
//   - dateFrom: YYYYMMDD (optional, defaults to today)
//   - dateTo: YYYYMMDD (optional, defaults to dateFrom)
//   - cats: comma-separated category ids (required)
//   - keywords: comma-separated product name keywords (optional)
//
// Success Response: 200 OK
//   - response: Array of employee rows with per-category buckets
//   - overall: Vendor's own totals for the same categories
//
// Error Responses:
//   - 400: Missing or malformed cats, malformed dates
//   - 500: POSTER_TOKEN not configured
//   - 502/504: Vendor failure
func (h *SalesHandler) WaitersCategories(c echo.Context) error {
	var query dto.WaitersCategoriesQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, validationCode(err), apierrors.WithDetails(err.Error()))
	}

	cats, err := parseCats(query.Cats)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidCats, apierrors.WithDetails(err.Error()))
	}
	if len(cats) == 0 {
		return SendError(c, apierrors.ValidationInvalidCats)
	}
	keywords := parseKeywords(query.Keywords)

	dateFrom, dateTo := resolveDateRange(query.DateRangeQuery, h.loc)

	report, err := h.categories.WaitersCategories(c.Request().Context(), dateFrom, dateTo, cats, keywords)
	if err != nil {
		return SendVendorError(c, err)
	}

	response := dto.WaitersCategoriesResponse{
		Response: make([]dto.EmployeeRow, 0, len(report.Employees)),
		Overall:  make([]dto.OverallRow, 0, len(report.Overall)),
	}
	for _, agg := range report.Employees {
		response.Response = append(response.Response, dto.NewEmployeeRow(agg))
	}
	for _, agg := range report.Overall {
		response.Overall = append(response.Overall, dto.NewOverallRow(agg))
	}

	return c.JSON(http.StatusOK, response)
}
