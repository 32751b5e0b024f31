// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Audacity88/chatcache/config"
	"github.com/Audacity88/chatcache/internal/http"
)

// InitializeApp creates and wires all application dependencies. The returned
// cleanup function stops the change feed and closes the database connection;
// call it after the HTTP server has shut down.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and change feed)
	dbComponents := InitializeDatabase(cfg.Database, cfg.Feed)

	// Initialize entity caches, search index, query front-end and feed applier
	serviceComponents := InitializeServices(cfg.Cache, cfg.Search, dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	feedCtx, stopFeed := context.WithCancel(context.Background())
	if dbComponents != nil && dbComponents.Feed != nil {
		StartChangeFeed(feedCtx, dbComponents.Feed, serviceComponents.FeedApplier)
	}

	cleanup := func() {
		stopFeed()
		serviceComponents.Querier.Close()
		if dbComponents != nil && dbComponents.DB != nil {
			_ = dbComponents.DB.Close(context.Background())
		}
	}

	router := http.NewRouter(
		routerComponents.Handler,
		routerComponents.SearchHandler,
		routerComponents.HealthHandler,
		routerComponents.Config,
	)
	return router, cleanup
}
