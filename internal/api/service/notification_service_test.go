package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"messagely/internal/api/models"
	"messagely/pkg/apperror"
)

func TestNotificationUnread(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	svc := NewNotificationService(mockRepo)

	mockRepo.On("FindUnreadByUser", "bob").Return([]models.Notification{
		{ID: 1, Username: "bob", MessageID: 42},
	}, nil)

	notifications, err := svc.Unread("bob")
	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationMarkRead_NotOwnedLooksMissing(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	svc := NewNotificationService(mockRepo)

	mockRepo.On("MarkRead", "alice", int64(1)).Return(int64(0), nil)

	err := svc.MarkRead("alice", 1)
	assert.True(t, apperror.IsNotFound(err))
}

func TestNotificationMarkRead_Success(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	svc := NewNotificationService(mockRepo)

	mockRepo.On("MarkRead", "bob", int64(1)).Return(int64(1), nil)

	assert.NoError(t, svc.MarkRead("bob", 1))
}

func TestNotificationMarkAllRead(t *testing.T) {
	mockRepo := new(MockNotificationRepository)
	svc := NewNotificationService(mockRepo)

	mockRepo.On("MarkAllRead", "bob").Return(nil)

	assert.NoError(t, svc.MarkAllRead("bob"))
}
