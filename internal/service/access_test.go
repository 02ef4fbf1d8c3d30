package service

import (
	"context"
	"fmt"
	"testing"

	"subquest/internal/domain"
	"subquest/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAdminID = int64(1000)

func TestAccessService_IsAllowed(t *testing.T) {
	tests := []struct {
		name            string
		userID          int64
		mockReturn      bool
		mockError       error
		expectedAllowed bool
		expectedError   bool
	}{
		{
			name:            "allowed user",
			userID:          123,
			mockReturn:      true,
			expectedAllowed: true,
		},
		{
			name:            "unknown user",
			userID:          456,
			mockReturn:      false,
			expectedAllowed: false,
		},
		{
			name:            "storage failure fails closed",
			userID:          789,
			mockReturn:      true,
			mockError:       fmt.Errorf("%w: disk", domain.ErrStorageUnavailable),
			expectedAllowed: false,
			expectedError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAllowListRepository)
			mockRepo.On("IsAllowed", mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			service := NewAccessService(mockRepo, testAdminID, true, testutil.NewTestLogger())

			allowed, err := service.IsAllowed(context.Background(), tt.userID)

			assert.Equal(t, tt.expectedAllowed, allowed)
			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAccessService_IsAdmin(t *testing.T) {
	tests := []struct {
		name          string
		adminID       int64
		adminCommands bool
		userID        int64
		expected      bool
	}{
		{
			name:          "configured admin",
			adminID:       testAdminID,
			adminCommands: true,
			userID:        testAdminID,
			expected:      true,
		},
		{
			name:          "other user",
			adminID:       testAdminID,
			adminCommands: true,
			userID:        1,
			expected:      false,
		},
		{
			name:          "admin commands disabled",
			adminID:       testAdminID,
			adminCommands: false,
			userID:        testAdminID,
			expected:      false,
		},
		{
			name:          "no admin configured",
			adminID:       0,
			adminCommands: true,
			userID:        0,
			expected:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewAccessService(new(testutil.MockAllowListRepository), tt.adminID, tt.adminCommands, testutil.NewTestLogger())

			assert.Equal(t, tt.expected, service.IsAdmin(tt.userID))
		})
	}
}

func TestAccessService_Grant(t *testing.T) {
	mockRepo := new(testutil.MockAllowListRepository)
	mockRepo.On("Add", mock.Anything, int64(123)).Return(nil)

	service := NewAccessService(mockRepo, testAdminID, true, testutil.NewTestLogger())

	err := service.Grant(context.Background(), testAdminID, 123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAccessService_GrantByNonAdmin(t *testing.T) {
	mockRepo := new(testutil.MockAllowListRepository)

	service := NewAccessService(mockRepo, testAdminID, true, testutil.NewTestLogger())

	err := service.Grant(context.Background(), 555, 123)

	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAccessService_GrantStorageFailure(t *testing.T) {
	mockRepo := new(testutil.MockAllowListRepository)
	mockRepo.On("Add", mock.Anything, int64(123)).Return(fmt.Errorf("%w: disk", domain.ErrStorageUnavailable))

	service := NewAccessService(mockRepo, testAdminID, true, testutil.NewTestLogger())

	err := service.Grant(context.Background(), testAdminID, 123)

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	mockRepo.AssertExpectations(t)
}

func TestAccessService_Revoke(t *testing.T) {
	mockRepo := new(testutil.MockAllowListRepository)
	mockRepo.On("Remove", mock.Anything, int64(123)).Return(nil)

	service := NewAccessService(mockRepo, testAdminID, true, testutil.NewTestLogger())

	assert.NoError(t, service.Revoke(context.Background(), testAdminID, 123))
	assert.ErrorIs(t, service.Revoke(context.Background(), 1, 123), domain.ErrNotAuthorized)

	mockRepo.AssertNumberOfCalls(t, "Remove", 1)
}
