package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Audacity88/chatcache/internal/service"
)

// PublicRouteGroup defines routes that can be registered on the API group.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ChatRoutes bundles the cached entity, search, cache-management and log routes.
type ChatRoutes struct {
	handler        *Handler
	searchHandler  *SearchHandler
	loggingService service.LoggingService
}

// NewChatRoutes creates the route group for the chat cache API.
func NewChatRoutes(handler *Handler, searchHandler *SearchHandler, loggingService service.LoggingService) *ChatRoutes {
	return &ChatRoutes{
		handler:        handler,
		searchHandler:  searchHandler,
		loggingService: loggingService,
	}
}

// RegisterPublicRoutes registers all chat cache API routes.
func (r *ChatRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages/:id", r.handler.GetMessage)
	rg.GET("/channels/:id", r.handler.GetChannel)
	rg.GET("/channels/:id/messages", r.handler.GetChannelMessages)
	rg.GET("/users/:id", r.handler.GetUser)

	rg.GET("/search", r.searchHandler.Search)

	cacheRoutes := rg.Group("/cache")
	cacheRoutes.GET("/stats", r.handler.GetCacheStats)
	cacheRoutes.POST("/channels/:id/invalidate", r.handler.InvalidateChannelMessages)
	cacheRoutes.POST("/users/:id/invalidate", r.handler.InvalidateUserData)
	cacheRoutes.DELETE("", r.handler.ClearCaches)

	if r.loggingService != nil {
		rg.GET("/logs", r.handler.QueryLogs(r.loggingService))
	}
}
