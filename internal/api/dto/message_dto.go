package dto

import (
	"time"

	"messagely/internal/api/models"
)

// SendMessageRequest: payload for sending a message
type SendMessageRequest struct {
	ToUsername string `json:"to_username" binding:"required"`
	Body       string `json:"body" binding:"required,max=10000"`
}

// CreatedMessage is the response shape for a freshly sent message.
type CreatedMessage struct {
	ID           int64     `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

func FromModelToCreatedMessage(m *models.Message) CreatedMessage {
	return CreatedMessage{
		ID:           m.ID,
		FromUsername: m.FromUsername,
		ToUsername:   m.ToUsername,
		Body:         m.Body,
		SentAt:       m.SentAt,
	}
}

// MessageDetail expands both endpoints to full user summaries.
type MessageDetail struct {
	ID       int64       `json:"id"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
	FromUser UserSummary `json:"from_user"`
	ToUser   UserSummary `json:"to_user"`
}

func FromModelToMessageDetail(m *models.Message) MessageDetail {
	return MessageDetail{
		ID:       m.ID,
		Body:     m.Body,
		SentAt:   m.SentAt,
		ReadAt:   m.ReadAt,
		FromUser: FromModelToUserSummary(&m.FromUser),
		ToUser:   FromModelToUserSummary(&m.ToUser),
	}
}

// SentMessage is one entry in a user's outbox listing.
type SentMessage struct {
	ID         int64      `json:"id"`
	ToUsername string     `json:"to_username"`
	Body       string     `json:"body"`
	SentAt     time.Time  `json:"sent_at"`
	ReadAt     *time.Time `json:"read_at"`
}

func FromModelsToSentMessages(messages []models.Message) []SentMessage {
	out := make([]SentMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, SentMessage{
			ID:         m.ID,
			ToUsername: m.ToUsername,
			Body:       m.Body,
			SentAt:     m.SentAt,
			ReadAt:     m.ReadAt,
		})
	}
	return out
}

// ReceivedMessage is one entry in a user's inbox listing.
type ReceivedMessage struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

func FromModelsToReceivedMessages(messages []models.Message) []ReceivedMessage {
	out := make([]ReceivedMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, ReceivedMessage{
			ID:           m.ID,
			FromUsername: m.FromUsername,
			Body:         m.Body,
			SentAt:       m.SentAt,
			ReadAt:       m.ReadAt,
		})
	}
	return out
}

// ReadReceipt is the response shape for marking a message read.
type ReadReceipt struct {
	ID     int64      `json:"id"`
	ReadAt *time.Time `json:"read_at"`
}
