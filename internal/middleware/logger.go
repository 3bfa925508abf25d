package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request's
// correlation ID is stored.
const RequestIDKey = "request_id"

// RequestID propagates the caller's X-Request-ID header, minting a fresh
// UUID when the caller sent none. The ID is echoed on the response so
// support tickets can be matched to log lines.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Logger writes one line per request: correlation ID, method, path,
// status, latency, and client IP.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("http: [%s] %s %s -> %d in %s from %s",
			c.GetString(RequestIDKey),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
			c.ClientIP(),
		)
	}
}

// Recovery recovers from handler panics and responds with a 500.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
