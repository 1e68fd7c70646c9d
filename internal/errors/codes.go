package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Configuration error codes (CONFIG_*)
const (
	ConfigMissingToken ErrorCode = "CONFIG_001"
	ConfigInvalidValue ErrorCode = "CONFIG_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral      ErrorCode = "VALIDATION_001"
	ValidationInvalidDate  ErrorCode = "VALIDATION_002"
	ValidationInvalidCats  ErrorCode = "VALIDATION_003"
	ValidationInvalidLimit ErrorCode = "VALIDATION_004"
)

// Vendor error codes (VENDOR_*)
const (
	VendorHTTPError   ErrorCode = "VENDOR_001"
	VendorTimeout     ErrorCode = "VENDOR_002"
	VendorBadPayload  ErrorCode = "VENDOR_003"
	VendorUnavailable ErrorCode = "VENDOR_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Configuration errors
	ConfigMissingToken: "POSTER_TOKEN is not set",
	ConfigInvalidValue: "Invalid configuration value",

	// Validation errors
	ValidationGeneral:      "Validation failed",
	ValidationInvalidDate:  "Date must be in YYYYMMDD format",
	ValidationInvalidCats:  "cats must be a comma-separated list of category ids",
	ValidationInvalidLimit: "limit must be a positive integer",

	// Vendor errors
	VendorHTTPError:   "Vendor API returned an error status",
	VendorTimeout:     "Vendor API call timed out",
	VendorBadPayload:  "Vendor API returned an unparsable response",
	VendorUnavailable: "Vendor API is unreachable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
