package handlers

import (
	"net/http"
	"time"

	"github.com/Greco-cyber/poster-dashboard/internal/dto"
	apierrors "github.com/Greco-cyber/poster-dashboard/internal/errors"
	"github.com/Greco-cyber/poster-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultDebugLimit = 50

// DebugHandler exposes parsed transaction positions for troubleshooting
// field resolution against a live account.
type DebugHandler struct {
	sampler services.DebugSampler
	loc     *time.Location
}

// NewDebugHandler creates a new debug handler.
func NewDebugHandler(sampler services.DebugSampler, loc *time.Location) *DebugHandler {
	return &DebugHandler{sampler: sampler, loc: loc}
}

// Transactions returns a bounded sample of normalized positions together
// with the transaction source that produced them.
//
// Method: GET /api/debug/tx
//
// Query parameters:
//   - dateFrom: YYYYMMDD (optional, defaults to today)
//   - dateTo: YYYYMMDD (optional, defaults to dateFrom)
//   - limit: Maximum positions to return (optional, default 50, max 500)
//
// Error Responses:
//   - 400: Malformed parameters
//   - 500: POSTER_TOKEN not configured
//   - 502/504: Vendor failure
func (h *DebugHandler) Transactions(c echo.Context) error {
	var query dto.DebugQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, validationCode(err), apierrors.WithDetails(err.Error()))
	}

	limit := query.Limit
	if limit == 0 {
		limit = defaultDebugLimit
	}

	dateFrom, dateTo := resolveDateRange(query.DateRangeQuery, h.loc)

	sample, err := h.sampler.DebugTransactions(c.Request().Context(), dateFrom, dateTo, limit)
	if err != nil {
		return SendVendorError(c, err)
	}

	return c.JSON(http.StatusOK, sample)
}
