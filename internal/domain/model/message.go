// Package model defines the core domain entities for the chat cache service.
//
// Record shapes mirror the tables owned by the remote backend (channels,
// messages, direct messages, profiles). This service never writes them back;
// it only caches and indexes what the backend delivers.
package model

import "time"

// MessageType classifies a message record.
type MessageType string

const (
	// MessageTypeText is a regular user-authored text message.
	MessageTypeText MessageType = "text"
	// MessageTypeSystem is a backend-generated system message.
	MessageTypeSystem MessageType = "system"
	// MessageTypeFile is a message whose primary payload is an attachment.
	MessageTypeFile MessageType = "file"
)

// Message represents a channel message record.
//
// @Description Chat message with its author and channel references
type Message struct {
	// ID is the message UUID assigned by the backend.
	ID string `bson:"_id" json:"id" example:"7f9c3f4e-4a1b-4f4e-9d7a-2b8c1d6e5f0a"`
	// ChannelID references the channel this message belongs to.
	ChannelID string `bson:"channel_id" json:"channel_id" example:"c1a2b3d4-0000-4000-8000-000000000001"`
	// Content is the message body.
	Content string `bson:"content" json:"content" example:"general discussion"`
	// Type is the message kind (text, system, file).
	Type MessageType `bson:"message_type" json:"message_type" example:"text"`
	// ParentID references the thread parent, if any.
	ParentID string `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	// Author is the denormalized author profile embedded by the backend.
	Author User `bson:"author" json:"author"`
	// Attachments holds backend-owned attachment metadata, opaque here.
	Attachments map[string]interface{} `bson:"attachments,omitempty" json:"attachments,omitempty"`
	// Metadata holds backend-owned extra fields, opaque here.
	Metadata map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`

	InsertedAt time.Time  `bson:"inserted_at" json:"inserted_at"`
	UpdatedAt  *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	DeletedAt  *time.Time `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`

	// Direct marks a direct message; they share the message record shape.
	Direct bool `bson:"direct,omitempty" json:"direct,omitempty"`
}

// Deleted reports whether the backend has soft-deleted this message.
func (m *Message) Deleted() bool {
	return m.DeletedAt != nil
}

// Timestamp returns the most recent mutation time of the message.
func (m *Message) Timestamp() time.Time {
	if m.UpdatedAt != nil {
		return *m.UpdatedAt
	}
	return m.InsertedAt
}
