// Package repository provides the realtime change feed over MongoDB change streams.
package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/metrics"
)

// watchedCollections are the collections the feed translates into change events.
var watchedCollections = []string{"messages", "channels", "users"}

// ChangeFeed consumes a database-level change stream and translates raw
// stream documents into model.ChangeEvent values.
//
// The stream delivers at-least-once; consumers of Events must be idempotent.
type ChangeFeed struct {
	db     *MongoDB
	events chan model.ChangeEvent
}

// streamDocument is the subset of a change stream document the feed decodes.
type streamDocument struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID string `bson:"_id"`
	} `bson:"documentKey"`
	NS struct {
		Collection string `bson:"coll"`
	} `bson:"ns"`
	FullDocument bson.Raw `bson:"fullDocument"`
}

// NewChangeFeed creates a change feed over db. buffer sizes the event channel;
// a non-positive buffer falls back to 256.
func NewChangeFeed(db *MongoDB, buffer int) *ChangeFeed {
	if buffer <= 0 {
		buffer = 256
	}
	return &ChangeFeed{
		db:     db,
		events: make(chan model.ChangeEvent, buffer),
	}
}

// Events returns the channel change events are delivered on. The channel is
// closed when the feed stops.
func (f *ChangeFeed) Events() <-chan model.ChangeEvent {
	return f.events
}

// Run consumes the change stream until ctx is cancelled or the stream fails.
// The events channel is closed on return.
func (f *ChangeFeed) Run(ctx context.Context) error {
	defer close(f.events)

	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"ns.coll":       bson.M{"$in": watchedCollections},
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
		}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := f.db.Database.Watch(ctx, pipeline, opts)
	if err != nil {
		return err
	}
	defer stream.Close(context.Background())

	log.Info().Strs("collections", watchedCollections).Msg("Change feed started")

	for stream.Next(ctx) {
		var doc streamDocument
		if err := stream.Decode(&doc); err != nil {
			log.Error().Err(err).Msg("Failed to decode change stream document")
			continue
		}

		event, ok := f.translate(doc)
		if !ok {
			continue
		}

		metrics.RecordChangeEvent(string(event.EntityKind), string(event.Op))

		select {
		case f.events <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	return ctx.Err()
}

// translate maps a raw stream document onto a domain change event.
func (f *ChangeFeed) translate(doc streamDocument) (model.ChangeEvent, bool) {
	event := model.ChangeEvent{
		Op:       translateOperation(doc.OperationType),
		EntityID: doc.DocumentKey.ID,
	}

	switch doc.NS.Collection {
	case "messages":
		event.EntityKind = model.KindMessage
		if len(doc.FullDocument) > 0 {
			var msg model.Message
			if err := bson.Unmarshal(doc.FullDocument, &msg); err != nil {
				log.Error().Err(err).Str("id", event.EntityID).Msg("Failed to decode message document")
				return model.ChangeEvent{}, false
			}
			// A soft-deleted message reaches consumers as a delete.
			if msg.Deleted() {
				event.Op = model.OpDelete
			} else {
				event.Message = &msg
			}
		}
	case "channels":
		event.EntityKind = model.KindChannel
		if len(doc.FullDocument) > 0 {
			var ch model.Channel
			if err := bson.Unmarshal(doc.FullDocument, &ch); err != nil {
				log.Error().Err(err).Str("id", event.EntityID).Msg("Failed to decode channel document")
				return model.ChangeEvent{}, false
			}
			event.Channel = &ch
		}
	case "users":
		event.EntityKind = model.KindUser
		if len(doc.FullDocument) > 0 {
			var user model.User
			if err := bson.Unmarshal(doc.FullDocument, &user); err != nil {
				log.Error().Err(err).Str("id", event.EntityID).Msg("Failed to decode user document")
				return model.ChangeEvent{}, false
			}
			event.User = &user
		}
	default:
		return model.ChangeEvent{}, false
	}

	return event, true
}

// translateOperation maps stream operation types onto feed operations.
// Replaces are full-document updates.
func translateOperation(op string) model.Operation {
	switch op {
	case "insert":
		return model.OpInsert
	case "delete":
		return model.OpDelete
	default:
		return model.OpUpdate
	}
}
