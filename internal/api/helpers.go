package api

import (
	"errors"                         // errors.Is for corrupt carts
	"net/http"                       // HTTP status codes
	"storefront/internal/cart"       // Cart manager
	"storefront/internal/middleware" // Scope context keys
	"strings"                        // Redirect target checks
	"time"                           // Notice lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// NoticeCookie flags that the next rendered page shows the add-to-cart notification
const NoticeCookie = "storefront_notice"

// logger returns an entry carrying the browser scope of the request
func logger(c *gin.Context) *logrus.Entry {
	return logrus.WithField("client_id", c.GetString(middleware.ClientIDKey))
}

// loadCart loads the scope's cart, resetting it when the stored list is corrupt.
// It answers 500 itself and returns false when the store fails.
func loadCart(c *gin.Context) (*cart.Manager, bool) {
	ctx := c.Request.Context()
	st := middleware.StoreFrom(c)
	m, err := cart.Load(ctx, st)
	if errors.Is(err, cart.ErrCorruptCart) {
		// Never render a half-decoded list; start over with an empty cart
		logger(c).WithField("error", err.Error()).Warn("Resetting corrupt cart")
		m, err = cart.Reset(ctx, st)
	}
	if err != nil {
		logger(c).WithField("error", err.Error()).Error("Failed to load cart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return nil, false
	}
	return m, true
}

// setNotice arms the notification for the next page render
func setNotice(c *gin.Context, d time.Duration) {
	maxAge := int(d.Seconds())
	if maxAge < 1 {
		maxAge = 1 // Cookie must survive the redirect
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(NoticeCookie, "added", maxAge, "/", "", false, true)
}

// takeNotice returns the pending notification, clearing it
func takeNotice(c *gin.Context) string {
	if _, err := c.Cookie(NoticeCookie); err != nil {
		return ""
	}
	c.SetCookie(NoticeCookie, "", -1, "/", "", false, true)
	return cart.Notification
}

// localRedirect returns target when it is a path on this site, else def
func localRedirect(target, def string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return def
	}
	return target
}

// storeError logs a store failure and answers 500
func storeError(c *gin.Context, action string, err error) {
	logger(c).WithFields(logrus.Fields{
		"action": action,      // What was attempted
		"error":  err.Error(), // Error message
	}).Error("Store operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
}
