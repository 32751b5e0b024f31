// Package app provides service initialization.
package app

import (
	"github.com/Audacity88/chatcache/config"
	"github.com/Audacity88/chatcache/internal/cache"
	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/repository"
	"github.com/Audacity88/chatcache/internal/search"
	"github.com/Audacity88/chatcache/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	EntityCache service.EntityCacheService
	Index       *search.Index
	Querier     *search.Querier
	FeedApplier *service.FeedApplierImpl
}

// InitializeServices initializes the entity caches, the search index, the
// debounced query front-end and the feed applier. dbComponents may be nil;
// the caches then serve only what the change feed or explicit puts deliver.
func InitializeServices(cacheCfg config.CacheConfig, searchCfg config.SearchConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	messages := cache.New[*model.Message]("messages", cacheCfg.MessageCapacity, cacheCfg.MessageTTL)
	channels := cache.New[*model.Channel]("channels", cacheCfg.ChannelCapacity, cacheCfg.ChannelTTL)
	users := cache.New[*model.User]("users", cacheCfg.UserCapacity, cacheCfg.UserTTL)

	var (
		messageRepo repository.MessageRepositoryInterface
		channelRepo repository.ChannelRepositoryInterface
		userRepo    repository.UserRepositoryInterface
	)
	if dbComponents != nil {
		messageRepo = dbComponents.MessageRepo
		channelRepo = dbComponents.ChannelRepo
		userRepo = dbComponents.UserRepo
	}

	entityCache := service.NewEntityCacheService(messages, channels, users, messageRepo, channelRepo, userRepo)
	index := search.NewIndex()

	return &ServiceComponents{
		EntityCache: entityCache,
		Index:       index,
		Querier:     search.NewQuerier(index, searchCfg.DebounceWindow),
		FeedApplier: service.NewFeedApplier(entityCache, index),
	}
}
