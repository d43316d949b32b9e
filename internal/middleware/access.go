package middleware

import (
	"net/http"                    // HTTP status codes
	"storefront/internal/session" // Redirect policy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging
)

// LoggedInKey holds the session flag read by AccessPolicy
const LoggedInKey = "loggedIn"

// AccessPolicy reads the session flag on each request and redirects away from
// views the visitor should not see in their current state
func AccessPolicy(view session.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		loggedIn, err := session.NewManager(StoreFrom(c)).LoggedIn(c.Request.Context())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"client_id": c.GetString(ClientIDKey), // Browser scope
				"view":      view,                     // Requested view
				"error":     err.Error(),              // Error message
			}).Error("Failed to read session flag")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
			return
		}
		// Redirect when the policy says so
		if target, redirect := session.Redirect(loggedIn, view); redirect {
			c.Redirect(http.StatusFound, target.Path())
			c.Abort()
			return
		}
		c.Set(LoggedInKey, loggedIn) // Store the flag for the page
		c.Next()                     // Proceed to the next handler
	}
}
