package api

import (
	"errors"                         // errors.Is for invalid credentials
	"net/http"                       // HTTP status codes
	"storefront/internal/middleware" // Scope store
	"storefront/internal/session"    // Session manager
	"storefront/internal/views"      // Page templates
	"time"                           // Redirect delay

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for signup. Nothing is validated: any pair is accepted.
type SignupRequest struct {
	Email    string `form:"email"`    // Email field of the signup form
	Password string `form:"password"` // Password field of the signup form
}

// Request struct for login
type LoginRequest struct {
	Email    string `form:"email"`    // Email field of the login form
	Password string `form:"password"` // Password field of the login form
}

// SignupHandler stores the submitted credential, logs the visitor in and
// renders the success message before navigating home
func SignupHandler(delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		m := session.NewManager(middleware.StoreFrom(c), session.WithRedirectDelay(delay))
		out, err := m.Signup(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			storeError(c, "sign up", err)
			return
		}
		logger(c).WithFields(logrus.Fields{
			"email":     req.Email,                       // Registered email
			"type":      "signup",                        // Event type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Signup")
		c.HTML(http.StatusOK, views.SignupPage, views.Page{
			Title:        "Sign up",
			Email:        req.Email,
			Message:      out.Message,
			RefreshURL:   out.RedirectTo.Path(),
			RefreshAfter: out.Delay,
		})
	}
}

// LoginHandler compares the submitted pair with the stored credential. A
// mismatch re-renders the login page with an inline error.
func LoginHandler(delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind form to struct
		if err := c.ShouldBind(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		m := session.NewManager(middleware.StoreFrom(c), session.WithRedirectDelay(delay))
		out, err := m.Login(c.Request.Context(), req.Email, req.Password)
		if errors.Is(err, session.ErrInvalidCredentials) {
			logger(c).WithField("email", req.Email).Warn("Login rejected")
			c.HTML(http.StatusUnauthorized, views.EntryPage, views.Page{
				Title:        "Login",
				Email:        req.Email,
				Message:      session.MsgInvalidCredentials,
				MessageError: true,
			})
			return
		}
		if err != nil {
			storeError(c, "log in", err)
			return
		}
		logger(c).WithFields(logrus.Fields{
			"email":     req.Email,                       // Logged in email
			"type":      "login",                         // Event type
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Login")
		c.HTML(http.StatusOK, views.EntryPage, views.Page{
			Title:        "Login",
			Email:        req.Email,
			Message:      out.Message,
			RefreshURL:   out.RedirectTo.Path(),
			RefreshAfter: out.Delay,
		})
	}
}

// LogoutHandler clears the credential, the session flag and the cart, then
// returns to the entry view
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.NewManager(middleware.StoreFrom(c)).Logout(c.Request.Context()); err != nil {
			storeError(c, "log out", err)
			return
		}
		logger(c).WithField("type", "logout").Info("Logout")
		c.Redirect(http.StatusSeeOther, session.ViewEntry.Path())
	}
}
