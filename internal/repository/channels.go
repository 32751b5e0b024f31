// Package repository provides channel data access layer.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Audacity88/chatcache/internal/domain/model"
)

// ChannelRepository implements ChannelRepositoryInterface using MongoDB.
type ChannelRepository struct {
	collection *mongo.Collection
}

// NewChannelRepository creates a new channel repository.
func NewChannelRepository(db *MongoDB) *ChannelRepository {
	return &ChannelRepository{
		collection: db.Channels,
	}
}

// FindByID finds a channel by its identifier.
func (r *ChannelRepository) FindByID(ctx context.Context, id string) (*model.Channel, error) {
	var ch model.Channel
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ch)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// FindBySlug finds a channel by its slug.
func (r *ChannelRepository) FindBySlug(ctx context.Context, slug string) (*model.Channel, error) {
	var ch model.Channel
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&ch)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// List returns channels ordered by creation time, newest first.
func (r *ChannelRepository) List(ctx context.Context, limit int64) ([]*model.Channel, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "inserted_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var channels []*model.Channel
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
