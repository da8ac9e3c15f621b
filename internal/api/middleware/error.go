package middleware

import (
	"fmt"
	"net/http"

	"github.com/rishabhinai-netizen/tradeaudit-pro/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into the uniform error envelope so a bad
// upload can never take the server down mid-request.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		case fmt.Stringer:
			msg = v.String()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: msg},
		})
	})
}
