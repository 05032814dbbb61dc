package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"messagely/internal/api/models"
	"messagely/internal/api/repository"
	"messagely/internal/auth"
	"messagely/internal/cache"
	"messagely/pkg/apperror"
)

// Postgres SQLSTATE codes surfaced by the pgx driver under gorm.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// UserService is the user directory: registration, credential
// verification, login bookkeeping and per-user message listings.
type UserService interface {
	Register(username, password, firstName, lastName, phone string) (*models.User, error)
	Authenticate(username, password string) error
	RecordLogin(username string) error
	ListAll() ([]models.User, error)
	Get(username string) (*models.User, error)
	MessagesFrom(username string) ([]models.Message, error)
	MessagesTo(username string) ([]models.Message, error)
}

type userService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	userCache   *cache.UserCache
	bcryptCost  int
	logger      *slog.Logger
}

func NewUserService(
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	userCache *cache.UserCache,
	bcryptCost int,
	logger *slog.Logger,
) UserService {
	return &userService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		userCache:   userCache,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// Register hashes the password and inserts the user with join_at and
// last_login_at set to now. Any constraint violation comes back as one
// generic conflict so the cause is not distinguishable from outside.
func (s *userService) Register(username, password, firstName, lastName, phone string) (*models.User, error) {
	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperror.NewInternalError("could not hash password", err)
	}

	now := time.Now()
	user := &models.User{
		Username:    username,
		Password:    hashed,
		FirstName:   firstName,
		LastName:    lastName,
		Phone:       phone,
		JoinAt:      now,
		LastLoginAt: now,
	}

	if err := s.userRepo.Create(user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation) {
			return nil, apperror.NewConflictError("registration failed", err)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("registration failed", err)
		}
		return nil, apperror.NewDatabaseError("could not create user", err)
	}

	return user, nil
}

// Authenticate returns nil when the password matches the stored hash. An
// unknown username is a typed not-found failure, never a silent false,
// and costs the same bcrypt work as a wrong password.
func (s *userService) Authenticate(username, password string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			auth.BurnPassword(password)
			return apperror.NewNotFoundError("user not found", err)
		}
		return apperror.NewDatabaseError("could not look up user", err)
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return apperror.NewAuthError("invalid credentials", err)
	}
	return nil
}

// RecordLogin stamps last_login_at and drops the cached user entry.
func (s *userService) RecordLogin(username string) error {
	if err := s.userRepo.UpdateLastLogin(username, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("user not found", err)
		}
		return apperror.NewDatabaseError("could not update login timestamp", err)
	}
	if err := s.userCache.Invalidate(context.Background(), username); err != nil {
		s.logger.Warn("failed to invalidate cached user", "username", username, "error", err)
	}
	return nil
}

// ListAll returns every user. An empty directory is an empty slice.
func (s *userService) ListAll() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperror.NewDatabaseError("could not list users", err)
	}
	return users, nil
}

func (s *userService) Get(username string) (*models.User, error) {
	ctx := context.Background()
	if user, ok := s.userCache.Get(ctx, username); ok {
		return user, nil
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("user not found", err)
		}
		return nil, apperror.NewDatabaseError("could not look up user", err)
	}

	if err := s.userCache.Set(ctx, user); err != nil {
		s.logger.Warn("failed to cache user", "username", username, "error", err)
	}
	return user, nil
}

// MessagesFrom lists the messages the user sent. The user must exist; a
// user with no outgoing mail gets an empty slice.
func (s *userService) MessagesFrom(username string) ([]models.Message, error) {
	if err := s.ensureExists(username); err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.FindBySender(username)
	if err != nil {
		return nil, apperror.NewDatabaseError("could not list sent messages", err)
	}
	return messages, nil
}

// MessagesTo lists the messages the user received.
func (s *userService) MessagesTo(username string) ([]models.Message, error) {
	if err := s.ensureExists(username); err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.FindByRecipient(username)
	if err != nil {
		return nil, apperror.NewDatabaseError("could not list received messages", err)
	}
	return messages, nil
}

func (s *userService) ensureExists(username string) error {
	if _, err := s.userRepo.FindByUsername(username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("user not found", err)
		}
		return apperror.NewDatabaseError("could not look up user", err)
	}
	return nil
}
