package models

import "time"

// Notification is written for the recipient whenever a message is sent,
// so clients can poll for unread mail without scanning the mailbox.
type Notification struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"not null;index" json:"username"` // the recipient
	MessageID int64     `gorm:"not null" json:"message_id"`
	Read      bool      `gorm:"default:false;not null" json:"read"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Associations
	Message *Message `gorm:"foreignKey:MessageID" json:"message,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}
