package service

import (
	"messagely/internal/api/models"
	"messagely/internal/api/repository"
	"messagely/pkg/apperror"
)

type NotificationService interface {
	Unread(username string) ([]models.Notification, error)
	MarkRead(username string, notificationID int64) error
	MarkAllRead(username string) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Unread(username string) ([]models.Notification, error) {
	notifications, err := s.repo.FindUnreadByUser(username)
	if err != nil {
		return nil, apperror.NewDatabaseError("could not list notifications", err)
	}
	return notifications, nil
}

// MarkRead only touches notifications owned by the caller; everything
// else is reported as missing.
func (s *notificationService) MarkRead(username string, notificationID int64) error {
	affected, err := s.repo.MarkRead(username, notificationID)
	if err != nil {
		return apperror.NewDatabaseError("could not mark notification read", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError("notification not found", nil)
	}
	return nil
}

func (s *notificationService) MarkAllRead(username string) error {
	if err := s.repo.MarkAllRead(username); err != nil {
		return apperror.NewDatabaseError("could not mark notifications read", err)
	}
	return nil
}
