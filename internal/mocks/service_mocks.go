// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Audacity88/chatcache/internal/domain/model"
	"github.com/Audacity88/chatcache/internal/service"
)

type MockEntityCacheService struct {
	mock.Mock
}

// NewMockEntityCacheService creates a mock wired to the test's lifecycle:
// expectations are asserted on cleanup.
func NewMockEntityCacheService(t *testing.T) *MockEntityCacheService {
	m := &MockEntityCacheService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEntityCacheService) GetMessage(ctx context.Context, id string) (*model.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockEntityCacheService) GetChannel(ctx context.Context, id string) (*model.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *MockEntityCacheService) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockEntityCacheService) PutMessage(msg *model.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockEntityCacheService) PutChannel(ch *model.Channel) error {
	args := m.Called(ch)
	return args.Error(0)
}

func (m *MockEntityCacheService) PutUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockEntityCacheService) InvalidateMessage(id string) {
	m.Called(id)
}

func (m *MockEntityCacheService) InvalidateChannel(id string) {
	m.Called(id)
}

func (m *MockEntityCacheService) InvalidateUser(id string) {
	m.Called(id)
}

func (m *MockEntityCacheService) InvalidateChannelMessages(channelID string) {
	m.Called(channelID)
}

func (m *MockEntityCacheService) InvalidateUserMessages(userID string) {
	m.Called(userID)
}

func (m *MockEntityCacheService) InvalidateUserData(userID string) {
	m.Called(userID)
}

func (m *MockEntityCacheService) Metrics() service.EntityCacheMetrics {
	args := m.Called()
	return args.Get(0).(service.EntityCacheMetrics)
}

func (m *MockEntityCacheService) Clear() {
	m.Called()
}

type MockLoggingService struct {
	mock.Mock
}

// NewMockLoggingService creates a mock wired to the test's lifecycle:
// expectations are asserted on cleanup.
func NewMockLoggingService(t *testing.T) *MockLoggingService {
	m := &MockLoggingService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
