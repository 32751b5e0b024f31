package model

// EntityKind names a domain entity kind carried by the change feed.
type EntityKind string

const (
	// KindMessage covers channel messages and direct messages.
	KindMessage EntityKind = "message"
	// KindChannel covers chat channels.
	KindChannel EntityKind = "channel"
	// KindUser covers user profiles.
	KindUser EntityKind = "user"
)

// Operation names a change-feed mutation.
type Operation string

const (
	// OpInsert is a newly created record.
	OpInsert Operation = "insert"
	// OpUpdate is an updated record.
	OpUpdate Operation = "update"
	// OpDelete is a removed record; only the id is guaranteed present.
	OpDelete Operation = "delete"
)

// ChangeEvent is one mutation delivered by the realtime feed collaborator.
//
// Exactly one of Message, Channel or User is set, matching Kind. Delivery is
// at-least-once and may be out of order, so consumers must be idempotent.
type ChangeEvent struct {
	EntityKind EntityKind `bson:"entity_kind" json:"entity_kind"`
	Op         Operation  `bson:"operation" json:"operation"`
	// EntityID is always set, also for deletes where the record body is gone.
	EntityID string `bson:"entity_id" json:"entity_id"`

	Message *Message `bson:"message,omitempty" json:"message,omitempty"`
	Channel *Channel `bson:"channel,omitempty" json:"channel,omitempty"`
	User    *User    `bson:"user,omitempty" json:"user,omitempty"`
}
