package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXSessionID = "X-Session-ID"
	ContextSessionID = "session_id"
)

// Session resolves the clinician session for the request. A session ID
// supplied in the header is reused; otherwise a fresh one is generated.
// Either way the ID is echoed back so the client can carry it forward.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(HeaderXSessionID)
		if sid == "" {
			sid = uuid.New().String()
		}

		c.Set(ContextSessionID, sid)
		c.Header(HeaderXSessionID, sid)
		c.Next()
	}
}

// SessionID returns the session ID resolved for this request.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionID)
}
