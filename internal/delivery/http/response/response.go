package response

import (
	"net/http"

	"ritter-digital-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Clients receive one of
// three shapes: success (optionally annotated), validation failure with
// field detail, or a hard failure with a generic message.
type Response struct {
	Success           bool                    `json:"success"`
	Message           string                  `json:"message,omitempty"`
	Error             string                  `json:"error,omitempty"`
	ValidationErrors  []validation.FieldError `json:"validationErrors,omitempty"`
	AlreadySubscribed *bool                   `json:"alreadySubscribed,omitempty"`
	RequestID         string                  `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		RequestID: requestID(c),
	})
}

// Subscribed sends a newsletter success response with the subscription
// outcome annotated.
func Subscribed(c *gin.Context, message string, already bool) {
	c.JSON(http.StatusOK, Response{
		Success:           true,
		Message:           message,
		AlreadySubscribed: &already,
		RequestID:         requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success:   false,
		Error:     message,
		RequestID: requestID(c),
	})
}

// ValidationFailed sends a 400 response listing every failed constraint
func ValidationFailed(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Success:          false,
		Error:            "Validierungsfehler",
		ValidationErrors: errs,
		RequestID:        requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
