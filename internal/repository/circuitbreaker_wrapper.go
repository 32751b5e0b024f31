// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/Audacity88/chatcache/internal/circuitbreaker"
	"github.com/Audacity88/chatcache/internal/domain/model"
)

// MessageRepositoryWithCircuitBreaker wraps MessageRepository with circuit breaker protection.
type MessageRepositoryWithCircuitBreaker struct {
	repo           *MessageRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewMessageRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewMessageRepositoryWithCircuitBreaker(repo *MessageRepository, cb *circuitbreaker.CircuitBreaker) *MessageRepositoryWithCircuitBreaker {
	return &MessageRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByID finds a message with circuit breaker protection.
func (r *MessageRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Message, error) {
	var result *model.Message
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByChannel returns channel messages with circuit breaker protection.
func (r *MessageRepositoryWithCircuitBreaker) FindByChannel(ctx context.Context, channelID string, limit, skip int64) ([]*model.Message, error) {
	var result []*model.Message
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByChannel(ctx, channelID, limit, skip)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *MessageRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ChannelRepositoryWithCircuitBreaker wraps ChannelRepository with circuit breaker protection.
type ChannelRepositoryWithCircuitBreaker struct {
	repo           *ChannelRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewChannelRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewChannelRepositoryWithCircuitBreaker(repo *ChannelRepository, cb *circuitbreaker.CircuitBreaker) *ChannelRepositoryWithCircuitBreaker {
	return &ChannelRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByID finds a channel with circuit breaker protection.
func (r *ChannelRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Channel, error) {
	var result *model.Channel
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindBySlug finds a channel by slug with circuit breaker protection.
func (r *ChannelRepositoryWithCircuitBreaker) FindBySlug(ctx context.Context, slug string) (*model.Channel, error) {
	var result *model.Channel
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindBySlug(ctx, slug)
		return cbErr
	})
	return result, err
}

// List returns channels with circuit breaker protection.
func (r *ChannelRepositoryWithCircuitBreaker) List(ctx context.Context, limit int64) ([]*model.Channel, error) {
	var result []*model.Channel
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ChannelRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// UserRepositoryWithCircuitBreaker wraps UserRepository with circuit breaker protection.
type UserRepositoryWithCircuitBreaker struct {
	repo           *UserRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewUserRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewUserRepositoryWithCircuitBreaker(repo *UserRepository, cb *circuitbreaker.CircuitBreaker) *UserRepositoryWithCircuitBreaker {
	return &UserRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// FindByID finds a user with circuit breaker protection.
func (r *UserRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.User, error) {
	var result *model.User
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// FindByUsername finds a user by username with circuit breaker protection.
func (r *UserRepositoryWithCircuitBreaker) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var result *model.User
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByUsername(ctx, username)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *UserRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open the entry is dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open the entries are dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of matching log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
