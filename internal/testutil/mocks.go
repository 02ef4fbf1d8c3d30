package testutil

import (
	"context"

	"subquest/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAllowListRepository is a mock for AllowListRepository
type MockAllowListRepository struct {
	mock.Mock
}

func (m *MockAllowListRepository) IsAllowed(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAllowListRepository) Add(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAllowListRepository) Remove(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockSessionRepository is a mock for SessionRepository.
// Update hands fn the session passed to Return when the mocked error is nil.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Update(ctx context.Context, userID int64, fn func(s *domain.Session) error) error {
	args := m.Called(ctx, userID)
	if err := args.Error(1); err != nil {
		return err
	}
	session := args.Get(0).(domain.Session)
	return fn(&session)
}

func (m *MockSessionRepository) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockSink is a mock for the admin chat sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Forward(ctx context.Context, ref domain.MessageRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockSink) Notify(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// MockReloader is a mock for Reloader
type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
