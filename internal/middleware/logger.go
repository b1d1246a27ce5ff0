package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request and converts panics into a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Printf(
					"request_panic method=%s path=%s client_ip=%s error=%v stack=%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					recovered,
					debug.Stack(),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
				return
			}

			log.Printf(
				"request method=%s path=%s status=%d client_ip=%s latency=%s",
				c.Request.Method,
				c.Request.URL.Path,
				c.Writer.Status(),
				c.ClientIP(),
				time.Since(start),
			)
		}()

		c.Next()
	}
}
