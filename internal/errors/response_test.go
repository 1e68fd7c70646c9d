package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(ConfigMissingToken, "trace-123")

	s.Equal("CONFIG_001", response.Error.Code)
	s.Equal("POSTER_TOKEN is not set", response.Error.Message)
	s.Equal("trace-123", response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		VendorHTTPError,
		"trace-456",
		WithMessage("Poster HTTP 403"),
		WithDetails("access denied"),
	)

	s.Equal("VENDOR_001", response.Error.Code)
	s.Equal("Poster HTTP 403", response.Error.Message)
	s.Equal([]string{"access denied"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{
		"dateFrom": "must be in YYYYMMDD format",
	}, "trace-789")

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "dateFrom")
}

func (s *ResponseTestSuite) TestNewVendorError() {
	response := NewVendorError(http.StatusServiceUnavailable, `{"error":"maintenance"}`, "trace-1")

	s.Equal("VENDOR_001", response.Error.Code)
	s.Equal("Poster HTTP 503", response.Error.Message)
	s.Equal([]string{`{"error":"maintenance"}`}, response.Error.Details)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{name: "missing token", code: ConfigMissingToken, expected: http.StatusInternalServerError},
		{name: "validation", code: ValidationInvalidDate, expected: http.StatusBadRequest},
		{name: "vendor http error", code: VendorHTTPError, expected: http.StatusBadGateway},
		{name: "vendor timeout", code: VendorTimeout, expected: http.StatusGatewayTimeout},
		{name: "vendor bad payload", code: VendorBadPayload, expected: http.StatusBadGateway},
		{name: "rate limit", code: SystemRateLimitExceeded, expected: http.StatusTooManyRequests},
		{name: "unavailable", code: SystemServiceUnavailable, expected: http.StatusServiceUnavailable},
		{name: "internal", code: SystemInternalError, expected: http.StatusInternalServerError},
		{name: "unknown code", code: ErrorCode("NOPE_999"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerClassification() {
	s.True(NewErrorResponse(ValidationGeneral, "t").IsClientError())
	s.False(NewErrorResponse(ValidationGeneral, "t").IsServerError())
	s.True(NewErrorResponse(VendorHTTPError, "t").IsServerError())
}

func (s *ResponseTestSuite) TestToJSON_Envelope() {
	response := NewErrorResponse(ConfigMissingToken, "trace-xyz")

	raw, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]any
	s.NoError(json.Unmarshal(raw, &decoded))
	s.Contains(decoded, "error")
}
