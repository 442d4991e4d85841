package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes recovered at the handler boundary. The wire shape depends on
// the code: validation errors use {"error":{"message":...}}, gate errors use
// a bare {"message":...}, everything else uses {"status":"failed",...}.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeDuplicateUser      = "DUPLICATE_USER"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewAppError(http.StatusInternalServerError, CodeInternal, "Internal server error")
	}

	switch appErr.Code {
	case CodeValidation:
		c.JSON(appErr.Status, gin.H{"error": gin.H{"message": appErr.Message}})
	case CodeUnauthorized, CodeInvalidToken, CodeForbidden:
		c.JSON(appErr.Status, gin.H{"message": appErr.Message})
	default:
		body := gin.H{"status": "failed"}
		if appErr.Message != "" {
			body["message"] = appErr.Message
		}
		c.JSON(appErr.Status, body)
	}
}

func RespondValidationError(c *gin.Context, message string) {
	RespondError(c, NewAppError(http.StatusBadRequest, CodeValidation, message))
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
