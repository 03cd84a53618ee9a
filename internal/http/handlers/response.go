// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by every endpoint: the
// ErrorResponse envelope, fail() (which logs 5xx with the request-scoped
// logger), ok(), and noContent().
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorlab/creatorlab-backend/internal/http/middleware"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"record not found"`
}

func errorResponse(c *gin.Context, code, msg string) ErrorResponse {
	return ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}
}

// fail aborts the request with a structured error. 5xx are logged with the
// request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	e := errorResponse(c, code, msg)
	failWith(c, status, e, e)
}

// failWith is fail for bodies that extend the envelope (generation
// placeholders); e is what gets logged.
func failWith(c *gin.Context, status int, e ErrorResponse, body any) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", e.Code).
			Str("message", e.Message).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, body)
}

// Fail is the exported variant of fail() for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// bindError maps a ShouldBindJSON error to a 400, or a 413 when the
// router's body limit tripped.
func bindError(err error) (int, string, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, ErrCodeBodyTooLarge, "request body too large"
	}
	return http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body"
}

// bindFailure writes the plain envelope for a ShouldBindJSON error.
func bindFailure(c *gin.Context, err error) {
	status, code, msg := bindError(err)
	fail(c, status, code, msg)
}

// detail strips a sentinel prefix ("bad request: ") from a wrapped error
// message so only the field-specific part reaches the client.
func detail(err, sentinel error) string {
	msg := err.Error()
	if m, found := strings.CutPrefix(msg, sentinel.Error()+": "); found {
		return m
	}
	return msg
}
