package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Connection/Availability errors (retryable)
const (
	// ErrCodeServiceUnavailable indicates the service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodePayloadTooLarge indicates the request body exceeded the configured limit.
	ErrCodePayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeConfiguration indicates a required setting is absent.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
)

// Upstream errors
const (
	// ErrCodeProxy indicates the upstream service could not be reached.
	ErrCodeProxy ErrorCode = "PROXY_ERROR"
	// ErrCodeUpstreamRejected indicates the upstream service answered with a non-2xx status.
	ErrCodeUpstreamRejected ErrorCode = "UPSTREAM_REJECTED"
	// ErrCodeExternalService indicates an unusable answer from an external service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable: true,
	ErrCodeTimeout:            true,
	ErrCodeProxy:              true,
	ErrCodeExternalService:    true,
	ErrCodeInternal:           false,
	ErrCodeConfiguration:      false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// It is advisory only; this service never retries on its own.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
