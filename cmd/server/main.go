package main

import (
	"context"                    // context package is needed for the store ping
	"storefront/internal/api"    // Custom package for HTTP handlers
	"storefront/internal/config" // Custom package for configuration
	"storefront/internal/store"  // Custom package for the persisted store
	"storefront/internal/views"  // Custom package for templates
	"time"                       // Start-up timeout

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect the storage backend selected by STORE_BACKEND
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	backend, err := store.Open(ctx, cfg)
	cancel()
	if err != nil {
		logrus.Fatalf("failed to open %s store: %v", cfg.StoreBackend, err) // Fatal error if the store is unreachable
	}

	// Parse templates once; a missing page fails start-up
	tpl, err := views.Load()
	if err != nil {
		logrus.Fatalf("failed to parse templates: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(cfg, backend, tpl) // Gin router with every route

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":  cfg.AppPort,      // Listening port
		"store": cfg.StoreBackend, // Storage backend
	}).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
