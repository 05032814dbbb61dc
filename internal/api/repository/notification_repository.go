package repository

import (
	"messagely/internal/api/models"

	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindUnreadByUser(username string) ([]models.Notification, error)
	MarkRead(username string, id int64) (int64, error)
	MarkAllRead(username string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) FindUnreadByUser(username string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Preload("Message").
		Where("username = ? AND read = false", username).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips the read flag for one of the user's notifications and
// reports how many rows matched, so callers can distinguish "not yours
// or missing" from success.
func (r *notificationRepository) MarkRead(username string, id int64) (int64, error) {
	res := r.db.Model(&models.Notification{}).
		Where("id = ? AND username = ?", id, username).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) MarkAllRead(username string) error {
	return r.db.Model(&models.Notification{}).
		Where("username = ? AND read = false", username).
		Update("read", true).Error
}
