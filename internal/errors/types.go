package errors

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "not_found", "server_error")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeNotFound        = "not_found"
	CodeServerError     = "server_error"
	CodeTooManyRequests = "too_many_requests"
)

type ErrorInfo struct {
	category  string
	sanitized string
}
