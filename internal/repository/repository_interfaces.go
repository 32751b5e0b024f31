// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/Audacity88/chatcache/internal/domain/model"
)

// MessageRepositoryInterface defines the interface for message repository operations.
type MessageRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*model.Message, error)
	FindByChannel(ctx context.Context, channelID string, limit, skip int64) ([]*model.Message, error)
}

// ChannelRepositoryInterface defines the interface for channel repository operations.
type ChannelRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*model.Channel, error)
	FindBySlug(ctx context.Context, slug string) (*model.Channel, error)
	List(ctx context.Context, limit int64) ([]*model.Channel, error)
}

// UserRepositoryInterface defines the interface for user repository operations.
type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// ChangeFeedInterface defines the interface for the realtime change feed.
type ChangeFeedInterface interface {
	// Events returns the channel change events are delivered on. The channel
	// is closed when the feed stops.
	Events() <-chan model.ChangeEvent

	// Run consumes the underlying stream until ctx is cancelled or the
	// stream fails irrecoverably.
	Run(ctx context.Context) error
}
