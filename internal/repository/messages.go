// Package repository provides message data access layer.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Audacity88/chatcache/internal/domain/model"
)

// MessageRepository implements MessageRepositoryInterface using MongoDB.
type MessageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *MongoDB) *MessageRepository {
	return &MessageRepository{
		collection: db.Messages,
	}
}

// FindByID finds a message by its identifier. Soft-deleted messages are
// excluded; callers see them the same way as missing documents.
func (r *MessageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	filter := bson.M{
		"_id":        id,
		"deleted_at": bson.M{"$exists": false},
	}

	var msg model.Message
	err := r.collection.FindOne(ctx, filter).Decode(&msg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// FindByChannel returns the newest messages of a channel, newest first.
func (r *MessageRepository) FindByChannel(ctx context.Context, channelID string, limit, skip int64) ([]*model.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := bson.M{
		"channel_id": channelID,
		"deleted_at": bson.M{"$exists": false},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "inserted_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*model.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
