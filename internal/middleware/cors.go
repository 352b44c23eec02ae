package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS sets the access-control headers expected by the EchoDo web client
// and short-circuits preflight requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token")
		c.Header("Access-Control-Allow-Methods", "GET,HEAD,OPTIONS,POST,PUT")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
