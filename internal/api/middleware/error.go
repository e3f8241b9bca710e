package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bls-chart/internal/api/models"
)

// ErrorHandler recovers panics into the standard error envelope so a
// handler bug never leaks a stack trace to the caller.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			message = s
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
