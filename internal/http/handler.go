package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Audacity88/chatcache/internal/domain/dto"
	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/i18n"
	"github.com/Audacity88/chatcache/internal/repository"
	"github.com/Audacity88/chatcache/internal/service"
)

// Handler provides HTTP handlers for the cached chat entity routes.
type Handler struct {
	entityCache service.EntityCacheService
	messageRepo repository.MessageRepositoryInterface
}

// NewHandler creates a new Handler instance.
func NewHandler(entityCache service.EntityCacheService, messageRepo repository.MessageRepositoryInterface) *Handler {
	return &Handler{
		entityCache: entityCache,
		messageRepo: messageRepo,
	}
}

// GetMessage handles GET /api/messages/:id requests.
//
// @Summary      Get message
// @Description  Returns a single message by id, served from the entity cache with read-through to storage on a miss.
// @Tags         Messages
// @Produce      json
// @Param        id path string true "Message id"
// @Success      200 {object} dto.SuccessResponse "Message found"
// @Failure      404 {object} dto.ErrorResponse "Message not found"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/messages/{id} [get]
func (h *Handler) GetMessage(c *gin.Context) {
	builder := NewResponseBuilder(c)

	msg, err := h.entityCache.GetMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if msg == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(msg)
}

// GetChannel handles GET /api/channels/:id requests.
//
// @Summary      Get channel
// @Description  Returns a single channel by id, served from the entity cache with read-through to storage on a miss.
// @Tags         Channels
// @Produce      json
// @Param        id path string true "Channel id"
// @Success      200 {object} dto.SuccessResponse "Channel found"
// @Failure      404 {object} dto.ErrorResponse "Channel not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/channels/{id} [get]
func (h *Handler) GetChannel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	ch, err := h.entityCache.GetChannel(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if ch == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(ch)
}

// GetChannelMessages handles GET /api/channels/:id/messages requests.
//
// @Summary      List channel messages
// @Description  Returns the newest messages of a channel, newest first. This is an uncached listing straight from storage; individual messages are cached on access.
// @Tags         Channels
// @Produce      json
// @Param        id path string true "Channel id"
// @Param        limit query int false "Maximum number of messages" default(50)
// @Param        skip query int false "Offset into the result set" default(0)
// @Success      200 {object} dto.SuccessResponse "Channel messages"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Storage backend disabled"
// @Router       /api/channels/{id}/messages [get]
func (h *Handler) GetChannelMessages(c *gin.Context) {
	builder := NewResponseBuilder(c)

	// Listings cannot be served cache-only; without a repository the route
	// is unavailable rather than a panic.
	if h.messageRepo == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyStorageUnavailable, nil)
		return
	}

	var params struct {
		Limit int64 `form:"limit,default=50" binding:"omitempty,gte=1,lte=200"`
		Skip  int64 `form:"skip" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	messages, err := h.messageRepo.FindByChannel(c.Request.Context(), c.Param("id"), params.Limit, params.Skip)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if messages == nil {
		messages = []*model.Message{}
	}

	builder.SuccessOK(messages)
}

// GetUser handles GET /api/users/:id requests.
//
// @Summary      Get user profile
// @Description  Returns a single user profile by id, served from the entity cache with read-through to storage on a miss.
// @Tags         Users
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} dto.SuccessResponse "User found"
// @Failure      404 {object} dto.ErrorResponse "User not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	builder := NewResponseBuilder(c)

	user, err := h.entityCache.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if user == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(user)
}

// GetCacheStats handles GET /api/cache/stats requests.
//
// @Summary      Cache statistics
// @Description  Returns hit, miss, eviction and size counters for each entity cache.
// @Tags         Cache
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Per-cache counters"
// @Router       /api/cache/stats [get]
func (h *Handler) GetCacheStats(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.entityCache.Metrics())
}

// InvalidateChannelMessages handles POST /api/cache/channels/:id/invalidate requests.
//
// @Summary      Invalidate channel messages
// @Description  Drops every cached message belonging to the channel. The next read per message falls through to storage.
// @Tags         Cache
// @Produce      json
// @Param        id path string true "Channel id"
// @Success      200 {object} dto.SuccessResponse "Invalidation applied"
// @Router       /api/cache/channels/{id}/invalidate [post]
func (h *Handler) InvalidateChannelMessages(c *gin.Context) {
	channelID := c.Param("id")
	h.entityCache.InvalidateChannelMessages(channelID)

	message := i18n.GetTranslator().Translate(i18n.SuccessKeyCacheInvalidated, i18n.GetLocale(c))
	NewResponseBuilder(c).SuccessOK(gin.H{"channel_id": channelID, "message": message})
}

// InvalidateUserData handles POST /api/cache/users/:id/invalidate requests.
//
// @Summary      Invalidate user data
// @Description  Drops the user's cached profile plus every cached message and channel tagged with that user.
// @Tags         Cache
// @Produce      json
// @Param        id path string true "User id"
// @Success      200 {object} dto.SuccessResponse "Invalidation applied"
// @Router       /api/cache/users/{id}/invalidate [post]
func (h *Handler) InvalidateUserData(c *gin.Context) {
	userID := c.Param("id")
	h.entityCache.InvalidateUserData(userID)

	message := i18n.GetTranslator().Translate(i18n.SuccessKeyCacheInvalidated, i18n.GetLocale(c))
	NewResponseBuilder(c).SuccessOK(gin.H{"user_id": userID, "message": message})
}

// ClearCaches handles DELETE /api/cache requests.
//
// @Summary      Clear caches
// @Description  Empties all entity caches. Intended for operational use after bulk data changes.
// @Tags         Cache
// @Produce     json
// @Success     200 {object} dto.SuccessResponse "Caches cleared"
// @Router      /api/cache [delete]
func (h *Handler) ClearCaches(c *gin.Context) {
	h.entityCache.Clear()
	NewResponseBuilder(c).SuccessOK(gin.H{"status": "cleared"})
}

// QueryLogs handles GET /api/logs requests.
//
// @Summary      Query request logs
// @Description  Returns persisted request log entries matching the given filters, newest first.
// @Tags         Logs
// @Produce      json
// @Param        request_id query string false "Filter by request id"
// @Param        level query string false "Filter by log level"
// @Param        limit query int false "Maximum number of entries" default(100)
// @Success      200 {object} dto.SuccessResponse "Matching log entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/logs [get]
func (h *Handler) QueryLogs(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		builder := NewResponseBuilder(c)

		var req dto.QueryLogsRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}

		entries, err := loggingService.QueryLogs(c.Request.Context(), model.LogQueryOptions{
			RequestID: req.RequestID,
			Level:     req.Level,
			Method:    req.Method,
			Path:      req.Path,
			Limit:     req.Limit,
			Skip:      req.Skip,
		})
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}

		builder.SuccessOK(entries)
	}
}
