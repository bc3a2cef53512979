package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gurohotvedt/cab230serverside/internal/api/middleware"
)

// ErrorResponse is the wire format for every failed request
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Error sends an error response and logs it
func Error(c *gin.Context, statusCode int, message string) {
	log.Warn().
		Str("request_id", middleware.GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", statusCode).
		Str("message", message).
		Msg("Request rejected")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: true, Message: message})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError sends a 500 Internal Server Error. The underlying error is
// logged, never exposed to the client.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("Internal server error")
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   true,
		Message: "An unexpected error occurred",
	})
}
