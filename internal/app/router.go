// Package app provides router configuration.
package app

import (
	"context"

	"github.com/Audacity88/chatcache/config"
	"github.com/Audacity88/chatcache/internal/http"
	"github.com/Audacity88/chatcache/internal/repository"
	"github.com/Audacity88/chatcache/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	SearchHandler *http.SearchHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var messageRepo repository.MessageRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		messageRepo = dbComponents.MessageRepo
		loggingService = dbComponents.LoggingService
	}

	handler := http.NewHandler(serviceComponents.EntityCache, messageRepo)
	searchHandler := http.NewSearchHandler(serviceComponents.Index)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.EntitiesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_entities", dbComponents.EntitiesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if db := dbComponents.DB; db != nil {
			healthHandler.AddChecker("mongodb", http.HealthCheckerFunc(func() error {
				return db.HealthCheck(context.Background())
			}))
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LoggingService: loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		SearchHandler: searchHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
