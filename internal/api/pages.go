package api

import (
	"net/http"                       // HTTP status codes
	"storefront/internal/catalog"    // Home view products
	"storefront/internal/middleware" // Session flag set by AccessPolicy
	"storefront/internal/views"      // Page templates
	"time"                           // Notice lifetime

	"github.com/gin-gonic/gin" // Gin web framework
)

// EntryHandler renders the login page
func EntryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, views.EntryPage, views.Page{Title: "Login"})
	}
}

// SignupPageHandler renders the signup page
func SignupPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, views.SignupPage, views.Page{Title: "Sign up"})
	}
}

// HomeHandler renders the catalog with its add-to-cart controls
func HomeHandler(noticeFor time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, views.HomePage, views.Page{
			Title:     "Shop",
			LoggedIn:  c.GetBool(middleware.LoggedInKey),
			Notice:    takeNotice(c),
			NoticeFor: noticeFor,
			Products:  catalog.All(),
		})
	}
}

// CartHandler renders the cart rows, item count and total price
func CartHandler(noticeFor time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, ok := loadCart(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, views.CartPage, views.Page{
			Title:     "Cart",
			LoggedIn:  c.GetBool(middleware.LoggedInKey),
			Notice:    takeNotice(c),
			NoticeFor: noticeFor,
			Cart:      m.Render(),
		})
	}
}
