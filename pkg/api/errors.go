package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	ErrorCodeInvalidLetter ErrorCode = "INVALID_LETTER"
	ErrorCodeInvalidLimit  ErrorCode = "INVALID_LIMIT"
	ErrorCodeInvalidWord   ErrorCode = "INVALID_WORD"
	ErrorCodeNotFound      ErrorCode = "NOT_FOUND"

	ErrorCodeOpenFailed ErrorCode = "OPEN_FAILED"
)

// APIError is the body of every error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// SendError writes a standardized error response
func SendError(c *gin.Context, status int, code ErrorCode, message string) {
	resp := APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		RequestID: c.GetString(requestIDKey),
	}
	c.AbortWithStatusJSON(status, resp)
}
