package middleware

import (
	"net/http"

	"github.com/ayodiya/hux-assessment-backend/internal/constants"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware answers preflight requests and opens the API to browser
// clients on other origins.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers",
			constants.HeaderContentType+", "+constants.HeaderAuthorization+", "+constants.HeaderXRequestID)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
