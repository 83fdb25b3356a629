package errors

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
)

// error categories for classification
const (
	CategoryFilesystem = "filesystem"
	CategoryNotFound   = "not_found"
	CategoryPermission = "permission"
	CategoryEncoding   = "encoding"
	CategoryTimeout    = "timeout"
	CategoryUnknown    = "unknown"
)

// analyzes an error and returns its category and sanitized message
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	isProduction := os.Getenv("ENVIRONMENT") == "production"

	if errors.Is(err, fs.ErrNotExist) {
		return ErrorInfo{
			category:  CategoryNotFound,
			sanitized: ternary(isProduction, "resource not found", err.Error()),
		}
	}

	if errors.Is(err, fs.ErrPermission) {
		return ErrorInfo{
			category:  CategoryPermission,
			sanitized: ternary(isProduction, "permission denied", err.Error()),
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return ErrorInfo{
			category:  CategoryFilesystem,
			sanitized: ternary(isProduction, "file operation failed", err.Error()),
		}
	}

	// fallback to string matching for unknown error types
	if strings.Contains(strings.ToLower(err.Error()), "utf-8") {
		return ErrorInfo{
			category:  CategoryEncoding,
			sanitized: ternary(isProduction, "invalid file encoding", err.Error()),
		}
	}

	return ErrorInfo{
		category:  CategoryUnknown,
		sanitized: ternary(isProduction, "an error occurred", err.Error()),
	}
}

// ternary helper for cleaner conditional assignment
func ternary(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}

	return falseVal
}
