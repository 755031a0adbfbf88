package middleware

import (
	"errors"
	"net/http"

	"ritter-digital-backend/internal/delivery/http/response"
	"ritter-digital-backend/pkg/apperror"
	"ritter-digital-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context into the response
// envelope. Unexpected errors are logged server-side and surfaced as a
// generic message; internal and provider details never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed", "error", appErr.Err, "path", c.FullPath())
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("unexpected error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "Ein serverseitiger Fehler ist aufgetreten")
			}
		}
	}
}
