package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"

	apierrors "github.com/Greco-cyber/poster-dashboard/internal/errors"
	"github.com/Greco-cyber/poster-dashboard/internal/poster"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Bad date ranges: SendError(c, errors.ValidationInvalidDate)
//    - Bad category lists: SendError(c, errors.ValidationInvalidCats)
//
// 2. SendVendorError - For failures of upstream Poster API calls
//    Maps the concrete vendor failure onto the error taxonomy:
//    missing token, vendor HTTP status, timeout, bad payload, transport.
//
// 3. SendSystemError - For system/internal errors (500 responses)
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
type ErrorResponse = apierrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := apierrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := apierrors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendVendorError translates a failed Poster call into an API error response.
// A vendor HTTP error propagates the vendor's own status code so the caller
// can distinguish a vendor 401 from a proxy failure.
func SendVendorError(c echo.Context, err error) error {
	traceID := getTraceID(c)

	if errors.Is(err, poster.ErrMissingToken) {
		return SendError(c, apierrors.ConfigMissingToken)
	}

	var apiErr *poster.APIError
	if errors.As(err, &apiErr) {
		errorResponse := apierrors.NewVendorError(apiErr.StatusCode, apiErr.Body, traceID)
		return c.JSON(apiErr.StatusCode, errorResponse)
	}

	var decodeErr *poster.DecodeError
	if errors.As(err, &decodeErr) {
		return SendError(c, apierrors.VendorBadPayload, apierrors.WithDetails(decodeErr.Error()))
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return SendError(c, apierrors.VendorTimeout)
	}

	return SendError(c, apierrors.VendorUnavailable, apierrors.WithDetails(err.Error()))
}
