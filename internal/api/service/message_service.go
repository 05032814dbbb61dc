package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"messagely/internal/api/models"
	"messagely/internal/api/repository"
	"messagely/pkg/apperror"
)

// MessageService is the message store: creation, retrieval with both
// endpoints expanded, and read-marking. Authorization (who may read or
// mark a message) is the caller's concern.
type MessageService interface {
	Create(fromUsername, toUsername, body string) (*models.Message, error)
	GetByID(id int64) (*models.Message, error)
	MarkRead(id int64) (*models.Message, error)
}

type messageService struct {
	messageRepo      repository.MessageRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) MessageService {
	return &messageService{
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Create inserts the message with sent_at set to now and read_at null.
// A reference to a user that does not exist is a validation failure.
// The recipient notification is best effort; losing it never fails the
// send.
func (s *messageService) Create(fromUsername, toUsername, body string) (*models.Message, error) {
	message := &models.Message{
		FromUsername: fromUsername,
		ToUsername:   toUsername,
		Body:         body,
		SentAt:       time.Now(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, apperror.NewValidationError("no such user", err)
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apperror.NewValidationError("no such user", err)
		}
		return nil, apperror.NewDatabaseError("could not create message", err)
	}

	notification := &models.Notification{
		Username:  toUsername,
		MessageID: message.ID,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		s.logger.Warn("failed to create notification", "message_id", message.ID, "error", err)
	}

	return message, nil
}

// GetByID returns the message with from_user and to_user expanded.
func (s *messageService) GetByID(id int64) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("message not found", err)
		}
		return nil, apperror.NewDatabaseError("could not look up message", err)
	}
	return message, nil
}

// MarkRead stamps read_at if it is still null and returns the message
// with its (possibly pre-existing) read timestamp. Marking an already
// read message is a no-op, not an error.
func (s *messageService) MarkRead(id int64) (*models.Message, error) {
	message, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if message.ReadAt == nil {
		now := time.Now()
		if err := s.messageRepo.MarkRead(id, now); err != nil {
			return nil, apperror.NewDatabaseError("could not mark message read", err)
		}
		message.ReadAt = &now
	}
	return message, nil
}
