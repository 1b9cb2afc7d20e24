package middleware

import (
	"net/http"

	"derivatives-case-study/internal/api/models"
	"derivatives-case-study/internal/logging"
	"derivatives-case-study/internal/model"

	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers panics, logs them and answers with a
// generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.FromContext(c.Request.Context()).Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    string(model.KindInternal),
				Message: "An unexpected error occurred",
			},
		})
	})
}

// NotFound answers unknown routes in the API error shape.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "Not found",
			},
		})
	}
}
