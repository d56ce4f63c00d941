package middleware

import (
	"net/http"

	"rinseo/services/session"

	"github.com/gin-gonic/gin"
)

// RequireSession guards routes that need an authenticated session. The
// response carries the safe path to return to, mirroring the
// protected-page redirect policy.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := ClientStore(c)
		if st == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "Client scope not resolved",
			})
			return
		}

		sess := session.New(st)
		if !sess.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Login required",
				"redirect": session.HomePath,
			})
			return
		}
		c.Next()
	}
}
