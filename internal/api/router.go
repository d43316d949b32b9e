package api

import (
	"html/template"                  // Parsed page templates
	"net/http"                       // HTTP status codes
	"storefront/internal/config"     // Delays and secrets
	"storefront/internal/middleware" // Scope and access middleware
	"storefront/internal/session"    // Views
	"storefront/internal/store"      // Storage backend
	"storefront/internal/views"      // Static assets

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter wires every storefront route onto a gin engine
func NewRouter(cfg *config.Config, backend store.Backend, tpl *template.Template) *gin.Engine {
	r := gin.Default() // Gin router instance
	r.SetHTMLTemplate(tpl)
	r.StaticFS("/static", views.Static())

	r.GET("/healthz", HealthHandler(backend)) // Store reachability

	// Every other route runs inside the browser's storage scope
	scoped := r.Group("")
	scoped.Use(middleware.StorageScope(backend, cfg.ScopeSecret, cfg.IsProd))

	scoped.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, session.ViewEntry.Path())
	})

	// Pages, guarded by the redirect policy
	scoped.GET(session.ViewEntry.Path(), middleware.AccessPolicy(session.ViewEntry), EntryHandler())
	scoped.GET(session.ViewSignup.Path(), middleware.AccessPolicy(session.ViewSignup), SignupPageHandler())
	scoped.GET(session.ViewHome.Path(), middleware.AccessPolicy(session.ViewHome), HomeHandler(cfg.NoticeDuration))
	scoped.GET(session.ViewCart.Path(), middleware.AccessPolicy(session.ViewCart), CartHandler(cfg.NoticeDuration))

	// Session forms are only live while logged out, like the pages that carry them
	scoped.POST("/login", middleware.AccessPolicy(session.ViewEntry), LoginHandler(cfg.RedirectDelay))
	scoped.POST("/signup", middleware.AccessPolicy(session.ViewSignup), SignupHandler(cfg.RedirectDelay))
	scoped.POST("/logout", LogoutHandler())

	// Cart routes require the session flag
	cartGroup := scoped.Group("/cart")
	cartGroup.Use(middleware.AccessPolicy(session.ViewCart))
	cartGroup.POST("/add", AddToCartHandler(cfg.NoticeDuration)) // Add item endpoint
	cartGroup.POST("/remove/:index", RemoveFromCartHandler())    // Remove item endpoint
	cartGroup.POST("/update/:index", UpdateQuantityHandler())    // Update quantity endpoint

	scoped.GET("/api/cart", middleware.AccessPolicy(session.ViewCart), CartJSONHandler()) // Cart view model

	return r
}

// HealthHandler reports whether the storage backend answers
func HealthHandler(backend store.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := backend.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
