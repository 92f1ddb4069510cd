package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// SessionMiddleware enforces the idle-session timeout on every protected
// request. It must run after AuthMiddleware. An expired session has already
// been deleted by the session service when Touch reports it, so the caller is
// fully logged out before the rejection is returned.
func SessionMiddleware(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenHash := c.GetString(ContextTokenHash)

		session, err := sessions.Touch(tokenHash)
		if err != nil {
			respondWithError(c, err)
			c.Abort()
			return
		}

		c.Header("X-Session-Remaining", strconv.Itoa(sessions.RemainingMinutes(session)))
		c.Next()
	}
}
