package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestIDHeader is the header used to expose and accept request IDs.
const RequestIDHeader = "X-Request-ID"

// RequestID is a Gin middleware that ensures every request carries a
// unique identifier.
//
// Behavior:
//   - Reuses an incoming X-Request-ID header when the client sent one,
//     so IDs stay stable across the frontend and this service.
//   - Generates a new UUID (v4) otherwise.
//   - Stores it in the Gin context under the key "request_id".
//   - Echoes it in the response headers as "X-Request-ID".
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		// Store in context for downstream usage
		c.Set(RequestIDKey, id)

		// Expose in response headers for clients
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
