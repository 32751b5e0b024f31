package service

import (
	"context"

	"github.com/Audacity88/chatcache/internal/cache"
	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/repository"
)

// Tag construction for cascade invalidation. A message is tagged with its
// channel and its author; a channel is tagged with its creator. User entries
// carry no tags, they are invalidated directly by id.
func channelTag(channelID string) string { return "channel:" + channelID }
func userTag(userID string) string       { return "user:" + userID }

// EntityCacheService is the cache-backed read path over chat entities.
//
// Get methods read through to the repository on a miss and cache the result.
// A nil record with a nil error means the entity does not exist upstream.
type EntityCacheService interface {
	GetMessage(ctx context.Context, id string) (*model.Message, error)
	GetChannel(ctx context.Context, id string) (*model.Channel, error)
	GetUser(ctx context.Context, id string) (*model.User, error)

	PutMessage(msg *model.Message) error
	PutChannel(ch *model.Channel) error
	PutUser(user *model.User) error

	InvalidateMessage(id string)
	InvalidateChannel(id string)
	InvalidateUser(id string)

	// InvalidateChannelMessages drops every cached message of a channel.
	InvalidateChannelMessages(channelID string)

	// InvalidateUserMessages drops every cached message authored by a user.
	InvalidateUserMessages(userID string)

	// InvalidateUserData drops the user's profile plus every cached message
	// and channel tagged with that user.
	InvalidateUserData(userID string)

	Metrics() EntityCacheMetrics
	Clear()
}

// EntityCacheMetrics aggregates per-kind cache counters.
type EntityCacheMetrics struct {
	Messages cache.Metrics `json:"messages"`
	Channels cache.Metrics `json:"channels"`
	Users    cache.Metrics `json:"users"`
}

// EntityCacheServiceImpl implements EntityCacheService over three typed caches.
type EntityCacheServiceImpl struct {
	messages *cache.Cache[*model.Message]
	channels *cache.Cache[*model.Channel]
	users    *cache.Cache[*model.User]

	messageRepo repository.MessageRepositoryInterface
	channelRepo repository.ChannelRepositoryInterface
	userRepo    repository.UserRepositoryInterface
}

// NewEntityCacheService creates the cache-backed read path. The repositories
// may be nil; read-through then degrades into a cache-only lookup that
// reports ErrRepositoryNotConfigured on a miss.
func NewEntityCacheService(
	messages *cache.Cache[*model.Message],
	channels *cache.Cache[*model.Channel],
	users *cache.Cache[*model.User],
	messageRepo repository.MessageRepositoryInterface,
	channelRepo repository.ChannelRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *EntityCacheServiceImpl {
	return &EntityCacheServiceImpl{
		messages:    messages,
		channels:    channels,
		users:       users,
		messageRepo: messageRepo,
		channelRepo: channelRepo,
		userRepo:    userRepo,
	}
}

// GetMessage returns a message from cache, reading through on a miss.
func (s *EntityCacheServiceImpl) GetMessage(ctx context.Context, id string) (*model.Message, error) {
	if msg, ok := s.messages.Get(id); ok {
		return msg, nil
	}
	if s.messageRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	msg, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newFetchError("message", id, err)
	}
	if msg == nil {
		return nil, nil
	}
	if err := s.PutMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetChannel returns a channel from cache, reading through on a miss.
func (s *EntityCacheServiceImpl) GetChannel(ctx context.Context, id string) (*model.Channel, error) {
	if ch, ok := s.channels.Get(id); ok {
		return ch, nil
	}
	if s.channelRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	ch, err := s.channelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newFetchError("channel", id, err)
	}
	if ch == nil {
		return nil, nil
	}
	if err := s.PutChannel(ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// GetUser returns a user profile from cache, reading through on a miss.
func (s *EntityCacheServiceImpl) GetUser(ctx context.Context, id string) (*model.User, error) {
	if user, ok := s.users.Get(id); ok {
		return user, nil
	}
	if s.userRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, newFetchError("user", id, err)
	}
	if user == nil {
		return nil, nil
	}
	if err := s.PutUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// PutMessage validates and caches a message, tagged with its channel and author.
func (s *EntityCacheServiceImpl) PutMessage(msg *model.Message) error {
	if msg.ID == "" {
		return newMissingFieldError("message", "id")
	}
	if msg.ChannelID == "" {
		return newMissingFieldError("message", "channel_id")
	}
	if msg.Author.ID == "" {
		return newMissingFieldError("message", "author.id")
	}

	s.messages.Set(msg.ID, msg, channelTag(msg.ChannelID), userTag(msg.Author.ID))
	return nil
}

// PutChannel validates and caches a channel, tagged with its creator.
func (s *EntityCacheServiceImpl) PutChannel(ch *model.Channel) error {
	if ch.ID == "" {
		return newMissingFieldError("channel", "id")
	}
	if ch.CreatedBy == "" {
		return newMissingFieldError("channel", "created_by")
	}

	s.channels.Set(ch.ID, ch, userTag(ch.CreatedBy))
	return nil
}

// PutUser validates and caches a user profile. User entries carry no tags.
func (s *EntityCacheServiceImpl) PutUser(user *model.User) error {
	if user.ID == "" {
		return newMissingFieldError("user", "id")
	}

	s.users.Set(user.ID, user)
	return nil
}

// InvalidateMessage removes one message from the cache.
func (s *EntityCacheServiceImpl) InvalidateMessage(id string) {
	s.messages.Remove(id)
}

// InvalidateChannel removes one channel from the cache.
func (s *EntityCacheServiceImpl) InvalidateChannel(id string) {
	s.channels.Remove(id)
}

// InvalidateUser removes one user profile from the cache.
func (s *EntityCacheServiceImpl) InvalidateUser(id string) {
	s.users.Remove(id)
}

// InvalidateChannelMessages drops every cached message of a channel.
func (s *EntityCacheServiceImpl) InvalidateChannelMessages(channelID string) {
	s.messages.InvalidateTag(channelTag(channelID))
}

// InvalidateUserMessages drops every cached message authored by a user.
func (s *EntityCacheServiceImpl) InvalidateUserMessages(userID string) {
	s.messages.InvalidateTag(userTag(userID))
}

// InvalidateUserData drops the user's profile plus every cached message and
// channel tagged with that user.
func (s *EntityCacheServiceImpl) InvalidateUserData(userID string) {
	tag := userTag(userID)
	s.users.Remove(userID)
	s.messages.InvalidateTag(tag)
	s.channels.InvalidateTag(tag)
}

// Metrics returns per-kind cache counters.
func (s *EntityCacheServiceImpl) Metrics() EntityCacheMetrics {
	return EntityCacheMetrics{
		Messages: s.messages.Metrics(),
		Channels: s.channels.Metrics(),
		Users:    s.users.Metrics(),
	}
}

// Clear empties all three caches.
func (s *EntityCacheServiceImpl) Clear() {
	s.messages.Clear()
	s.channels.Clear()
	s.users.Clear()
}
