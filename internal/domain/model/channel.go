package model

import "time"

// Channel represents a chat channel record.
//
// @Description Chat channel
type Channel struct {
	// ID is the channel UUID assigned by the backend.
	ID string `bson:"_id" json:"id" example:"c1a2b3d4-0000-4000-8000-000000000001"`
	// Slug is the human-readable channel name.
	Slug string `bson:"slug" json:"slug" example:"general"`
	// CreatedBy references the user that created the channel.
	CreatedBy string `bson:"created_by" json:"created_by"`

	InsertedAt time.Time `bson:"inserted_at" json:"inserted_at"`
}
