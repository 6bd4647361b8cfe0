package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape every endpoint responds with.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

type AppError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string, details interface{}) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Details: details}
}

// Common typed errors. Services return these; the handlers translate them
// exactly once via RespondError.

func ErrValidation(message string, details interface{}) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", message, details)
}

func ErrConflict(message string) *AppError {
	return NewAppError(http.StatusConflict, "CONFLICT", message, nil)
}

func ErrUnauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func ErrForbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, "FORBIDDEN", message, nil)
}

func ErrNotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "NOT_FOUND", message, nil)
}

func ErrInternal(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, Envelope{
			Success:   false,
			Message:   "internal server error",
			ErrorCode: "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(appErr.Status, Envelope{
		Success:   false,
		Message:   appErr.Message,
		ErrorCode: appErr.Code,
		Details:   appErr.Details,
	})
}

func RespondValidationError(c *gin.Context, details interface{}) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Success:   false,
		Message:   "invalid request",
		ErrorCode: "VALIDATION_ERROR",
		Details:   details,
	})
}

func RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func RespondList(c *gin.Context, message string, data interface{}, meta interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Meta: meta})
}
