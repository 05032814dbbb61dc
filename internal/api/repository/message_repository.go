package repository

import (
	"time"

	"messagely/internal/api/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations.
type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id int64) (*models.Message, error)
	FindBySender(username string) ([]models.Message, error)
	FindByRecipient(username string) ([]models.Message, error)
	MarkRead(id int64, at time.Time) error
}

// messageRepository is the GORM implementation of MessageRepository.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new instance of MessageRepository in a GORM implementation
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindByID loads the message with both endpoints expanded.
func (r *messageRepository) FindByID(id int64) (*models.Message, error) {
	var message models.Message
	if err := r.db.Preload("FromUser").Preload("ToUser").First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) FindBySender(username string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("from_username = ?", username).Order("sent_at").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) FindByRecipient(username string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("to_username = ?", username).Order("sent_at").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead stamps read_at only while it is still null, so the first
// timestamp wins when calls race.
func (r *messageRepository) MarkRead(id int64, at time.Time) error {
	return r.db.Model(&models.Message{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", at).Error
}
