package middleware

import (
	"net/http"                  // HTTP status codes and cookie attributes
	"storefront/internal/store" // Persisted store
	"storefront/internal/utils" // Scope token helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Client IDs
	"github.com/sirupsen/logrus" // Logging
)

// ScopeCookie holds the signed token naming the browser's storage scope
const ScopeCookie = "storefront_scope"

// Context keys set by StorageScope
const (
	ClientIDKey = "clientID" // Browser client ID
	StoreKey    = "store"    // store.Store bound to the client ID
)

// StorageScope resolves the browser's storage scope from its cookie, issuing a
// new one when the cookie is missing or fails verification, and injects the
// scope's Store into the context.
func StorageScope(backend store.Backend, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := ""
		// Reuse the scope of a valid cookie
		if tokenStr, err := c.Cookie(ScopeCookie); err == nil {
			if claims, err := utils.ParseScopeToken(tokenStr, secret); err == nil {
				clientID = claims.ClientID
			} else {
				logrus.WithField("error", err.Error()).Debug("Discarding invalid scope cookie")
			}
		}
		// Otherwise start a fresh scope, the equivalent of a new browser origin
		if clientID == "" {
			clientID = uuid.NewString()
			token, err := utils.GenerateScopeToken(clientID, secret)
			if err != nil {
				logrus.WithField("error", err.Error()).Error("Failed to sign scope token")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ScopeCookie, token, int(utils.ScopeTokenTTL.Seconds()), "/", "", secure, true)
		}
		c.Set(ClientIDKey, clientID)           // Store client ID in context
		c.Set(StoreKey, backend.For(clientID)) // Store the scope's Store in context
		c.Next()                               // Proceed to the next handler
	}
}

// StoreFrom returns the Store injected by StorageScope
func StoreFrom(c *gin.Context) store.Store {
	return c.MustGet(StoreKey).(store.Store)
}
