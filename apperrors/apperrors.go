package apperrors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation reports a missing or malformed required field (HTTP 400).
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound reports an absent referenced entity (HTTP 404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Persistence reports an unreachable store or failed write (HTTP 500).
func Persistence(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// HandleError converts err into the JSON error body. Every response carries a
// human-readable "message"; 500s additionally expose the underlying error
// text in "error".
func HandleError(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = New(http.StatusInternalServerError, "Internal server error", err)
	}

	body := gin.H{"message": appErr.Message}
	if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
		body["error"] = appErr.Err.Error()
	}
	c.JSON(appErr.Code, body)
}
