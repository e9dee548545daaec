package respond

import (
	"github.com/gin-gonic/gin"

	"recipe-backend/internal/shared/telemetry"
)

// ErrorResponse is the error body returned to clients.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error logs and sends an error response, aborting the handler chain.
func Error(c *gin.Context, status int, code, message string) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if title := c.GetString("recipeTitle"); title != "" {
		fields["recipe_title"] = title
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
