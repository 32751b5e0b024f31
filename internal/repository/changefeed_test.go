//go:build !integration

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Audacity88/chatcache/internal/domain/model"
)

func rawDocument(t *testing.T, v interface{}) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	return raw
}

func newStreamDocument(op, collection, id string, full bson.Raw) streamDocument {
	var doc streamDocument
	doc.OperationType = op
	doc.DocumentKey.ID = id
	doc.NS.Collection = collection
	doc.FullDocument = full
	return doc
}

func TestChangeFeed_Translate(t *testing.T) {
	feed := NewChangeFeed(nil, 0)
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("message insert carries full document", func(t *testing.T) {
		msg := model.Message{
			ID:         "m1",
			ChannelID:  "c1",
			Content:    "hello",
			Type:       model.MessageTypeText,
			Author:     model.User{ID: "u1", Username: "grace", CreatedAt: now},
			InsertedAt: now,
		}

		event, ok := feed.translate(newStreamDocument("insert", "messages", "m1", rawDocument(t, msg)))
		require.True(t, ok)
		assert.Equal(t, model.KindMessage, event.EntityKind)
		assert.Equal(t, model.OpInsert, event.Op)
		assert.Equal(t, "m1", event.EntityID)
		require.NotNil(t, event.Message)
		assert.Equal(t, "hello", event.Message.Content)
	})

	t.Run("soft deleted message becomes delete", func(t *testing.T) {
		deletedAt := now.Add(time.Minute)
		msg := model.Message{
			ID:         "m1",
			ChannelID:  "c1",
			Content:    "hello",
			Type:       model.MessageTypeText,
			Author:     model.User{ID: "u1", Username: "grace", CreatedAt: now},
			InsertedAt: now,
			DeletedAt:  &deletedAt,
		}

		event, ok := feed.translate(newStreamDocument("update", "messages", "m1", rawDocument(t, msg)))
		require.True(t, ok)
		assert.Equal(t, model.OpDelete, event.Op)
		assert.Nil(t, event.Message)
	})

	t.Run("hard delete has no document", func(t *testing.T) {
		event, ok := feed.translate(newStreamDocument("delete", "messages", "m1", nil))
		require.True(t, ok)
		assert.Equal(t, model.OpDelete, event.Op)
		assert.Equal(t, "m1", event.EntityID)
		assert.Nil(t, event.Message)
	})

	t.Run("replace becomes update", func(t *testing.T) {
		ch := model.Channel{ID: "c1", Slug: "general", CreatedBy: "u1", InsertedAt: now}

		event, ok := feed.translate(newStreamDocument("replace", "channels", "c1", rawDocument(t, ch)))
		require.True(t, ok)
		assert.Equal(t, model.KindChannel, event.EntityKind)
		assert.Equal(t, model.OpUpdate, event.Op)
		require.NotNil(t, event.Channel)
		assert.Equal(t, "general", event.Channel.Slug)
	})

	t.Run("user update carries profile", func(t *testing.T) {
		user := model.User{ID: "u1", Username: "grace", CreatedAt: now}

		event, ok := feed.translate(newStreamDocument("update", "users", "u1", rawDocument(t, user)))
		require.True(t, ok)
		assert.Equal(t, model.KindUser, event.EntityKind)
		require.NotNil(t, event.User)
		assert.Equal(t, "grace", event.User.Username)
	})

	t.Run("unknown collection is dropped", func(t *testing.T) {
		_, ok := feed.translate(newStreamDocument("insert", "reactions", "r1", nil))
		assert.False(t, ok)
	})

	t.Run("undecodable document is dropped", func(t *testing.T) {
		_, ok := feed.translate(newStreamDocument("insert", "messages", "m1", bson.Raw{0x01, 0x02}))
		assert.False(t, ok)
	})
}

func TestTranslateOperation(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Operation
	}{
		{input: "insert", expected: model.OpInsert},
		{input: "delete", expected: model.OpDelete},
		{input: "update", expected: model.OpUpdate},
		{input: "replace", expected: model.OpUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, translateOperation(tt.input))
		})
	}
}

func TestNewChangeFeed_BufferFallback(t *testing.T) {
	feed := NewChangeFeed(nil, -5)
	assert.Equal(t, 256, cap(feed.events))

	feed = NewChangeFeed(nil, 16)
	assert.Equal(t, 16, cap(feed.events))
}
