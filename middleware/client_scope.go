package middleware

import (
	"strings"

	"rinseo/store"
	"rinseo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ClientIDHeader carries the anonymous client namespace ID, the
	// server-side stand-in for one browser's local storage.
	ClientIDHeader = "X-Client-ID"

	ctxClientID = "clientID"
	ctxStore    = "clientStore"
)

// ClientScope resolves the calling client's store namespace and puts a
// prefixed store view into the request context. Authenticated requests
// are scoped by the token subject; anonymous ones by the client ID
// header, minted here on first contact.
func ClientScope(base store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := ""

		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if id, err := utils.ExtractIDFromToken(token); err == nil {
				clientID = id
			}
		}
		if clientID == "" {
			clientID = c.GetHeader(ClientIDHeader)
		}
		if clientID == "" {
			clientID = uuid.NewString()
		}

		c.Header(ClientIDHeader, clientID)
		c.Set(ctxClientID, clientID)
		c.Set(ctxStore, store.WithPrefix(base, "client:"+clientID+":"))
		c.Next()
	}
}

// ClientStore returns the request's namespaced store.
func ClientStore(c *gin.Context) store.Store {
	v, _ := c.Get(ctxStore)
	st, _ := v.(store.Store)
	return st
}

// ClientID returns the request's resolved client namespace ID.
func ClientID(c *gin.Context) string {
	return c.GetString(ctxClientID)
}
