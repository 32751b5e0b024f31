//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Audacity88/chatcache/internal/circuitbreaker"
)

// tripCircuit drives the breaker into the open state without touching storage.
func tripCircuit(t *testing.T, cb *circuitbreaker.CircuitBreaker) {
	t.Helper()

	for i := 0; i < circuitbreaker.DefaultConfig().FailureThreshold; i++ {
		_ = cb.Execute(context.Background(), func() error {
			return errors.New("storage unavailable")
		})
	}
	require.True(t, cb.IsOpen())
}

func TestMessageRepositoryWithCircuitBreaker_OpenCircuitShortCircuits(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	tripCircuit(t, cb)

	// The underlying repository is never reached while the circuit is open,
	// so a zero-value repository is safe here.
	wrapper := NewMessageRepositoryWithCircuitBreaker(&MessageRepository{}, cb)

	msg, err := wrapper.FindByID(context.Background(), "m1")
	assert.Nil(t, msg)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	messages, err := wrapper.FindByChannel(context.Background(), "c1", 50, 0)
	assert.Nil(t, messages)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestChannelRepositoryWithCircuitBreaker_OpenCircuitShortCircuits(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	tripCircuit(t, cb)

	wrapper := NewChannelRepositoryWithCircuitBreaker(&ChannelRepository{}, cb)

	ch, err := wrapper.FindByID(context.Background(), "c1")
	assert.Nil(t, ch)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	ch, err = wrapper.FindBySlug(context.Background(), "general")
	assert.Nil(t, ch)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	channels, err := wrapper.List(context.Background(), 100)
	assert.Nil(t, channels)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestUserRepositoryWithCircuitBreaker_OpenCircuitShortCircuits(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	tripCircuit(t, cb)

	wrapper := NewUserRepositoryWithCircuitBreaker(&UserRepository{}, cb)

	user, err := wrapper.FindByID(context.Background(), "u1")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestLogsRepositoryWithCircuitBreaker_DropsWritesWhenOpen(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	tripCircuit(t, cb)

	wrapper := NewLogsRepositoryWithCircuitBreaker(&LogsRepository{}, cb)

	// Log writes are non-critical: an open circuit drops them silently.
	assert.NoError(t, wrapper.Create(context.Background(), &LogEntryDocument{Message: "dropped"}))
	assert.NoError(t, wrapper.CreateMany(context.Background(), []*LogEntryDocument{{Message: "dropped"}}))

	// Reads still surface the open circuit.
	entries, err := wrapper.Query(context.Background(), LogQueryOptions{})
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)

	count, err := wrapper.Count(context.Background(), LogQueryOptions{})
	assert.Zero(t, count)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestRepositoryWrappers_ExposeCircuitBreaker(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())

	assert.Same(t, cb, NewMessageRepositoryWithCircuitBreaker(&MessageRepository{}, cb).GetCircuitBreaker())
	assert.Same(t, cb, NewChannelRepositoryWithCircuitBreaker(&ChannelRepository{}, cb).GetCircuitBreaker())
	assert.Same(t, cb, NewUserRepositoryWithCircuitBreaker(&UserRepository{}, cb).GetCircuitBreaker())
	assert.Same(t, cb, NewLogsRepositoryWithCircuitBreaker(&LogsRepository{}, cb).GetCircuitBreaker())
}
