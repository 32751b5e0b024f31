package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/search"
)

// IndexSyncer is the slice of the search index the feed applier drives.
// *search.Index satisfies it.
type IndexSyncer interface {
	IndexMessage(m model.Message)
	IndexChannel(ch model.Channel)
	Remove(id string)
	RemoveByMetadata(key, value string)
}

// FeedApplierService applies realtime change events to the entity caches and
// the search index.
type FeedApplierService interface {
	ApplyEvent(ctx context.Context, event model.ChangeEvent) error
}

// FeedApplierImpl implements FeedApplierService.
//
// Handlers are idempotent: the feed delivers at-least-once and possibly out
// of order, so applying the same event twice must land in the same state.
type FeedApplierImpl struct {
	caches EntityCacheService
	index  IndexSyncer
}

// NewFeedApplier creates a feed applier over the entity caches and the index.
func NewFeedApplier(caches EntityCacheService, index IndexSyncer) *FeedApplierImpl {
	return &FeedApplierImpl{
		caches: caches,
		index:  index,
	}
}

// ApplyEvent routes one change event to its entity handler.
func (a *FeedApplierImpl) ApplyEvent(ctx context.Context, event model.ChangeEvent) error {
	if event.EntityID == "" {
		return errors.New("change event without entity id")
	}

	switch event.EntityKind {
	case model.KindMessage:
		return a.applyMessage(event)
	case model.KindChannel:
		return a.applyChannel(event)
	case model.KindUser:
		return a.applyUser(event)
	default:
		return fmt.Errorf("unknown entity kind %q", event.EntityKind)
	}
}

// applyMessage mirrors a message mutation into cache and index.
func (a *FeedApplierImpl) applyMessage(event model.ChangeEvent) error {
	if event.Op == model.OpDelete || event.Message == nil {
		a.caches.InvalidateMessage(event.EntityID)
		a.index.Remove(event.EntityID)
		return nil
	}

	if err := a.caches.PutMessage(event.Message); err != nil {
		// A malformed record must not leave a stale entry behind.
		a.caches.InvalidateMessage(event.EntityID)
		a.index.Remove(event.EntityID)
		return err
	}
	a.index.IndexMessage(*event.Message)
	return nil
}

// applyChannel mirrors a channel mutation. Deleting a channel also drops the
// channel's cached and indexed messages.
func (a *FeedApplierImpl) applyChannel(event model.ChangeEvent) error {
	if event.Op == model.OpDelete || event.Channel == nil {
		a.caches.InvalidateChannel(event.EntityID)
		a.caches.InvalidateChannelMessages(event.EntityID)
		a.index.Remove(event.EntityID)
		a.index.RemoveByMetadata("channel_id", event.EntityID)
		return nil
	}

	if err := a.caches.PutChannel(event.Channel); err != nil {
		a.caches.InvalidateChannel(event.EntityID)
		a.index.Remove(event.EntityID)
		return err
	}
	a.index.IndexChannel(*event.Channel)
	return nil
}

// applyUser mirrors a user mutation. A user delete cascades into every
// cached message and channel tagged with that user; an update refreshes the
// profile and drops the user's cached messages, whose embedded author fields
// are now stale. The index is untouched because user profiles are not
// indexed.
func (a *FeedApplierImpl) applyUser(event model.ChangeEvent) error {
	if event.Op == model.OpDelete || event.User == nil {
		a.caches.InvalidateUserData(event.EntityID)
		return nil
	}

	if err := a.caches.PutUser(event.User); err != nil {
		a.caches.InvalidateUser(event.EntityID)
		return err
	}
	if event.Op == model.OpUpdate {
		a.caches.InvalidateUserMessages(event.EntityID)
	}
	return nil
}

// ConsumeFeed drains events until the channel closes or ctx is cancelled.
// Apply errors are logged and skipped; one bad event must not stall the feed.
func (a *FeedApplierImpl) ConsumeFeed(ctx context.Context, events <-chan model.ChangeEvent) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				log.Info().Msg("Change feed closed")
				return
			}
			if err := a.ApplyEvent(ctx, event); err != nil {
				log.Error().
					Err(err).
					Str("entity_kind", string(event.EntityKind)).
					Str("operation", string(event.Op)).
					Str("entity_id", event.EntityID).
					Msg("Failed to apply change event")
			}
		case <-ctx.Done():
			return
		}
	}
}

// Compile-time check that the search index satisfies IndexSyncer.
var _ IndexSyncer = (*search.Index)(nil)
