package models

import "time"

// Message is created once and mutated exactly once, when the recipient
// marks it read. A nil ReadAt means unread.
type Message struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FromUsername string     `gorm:"not null;index" json:"from_username"`
	ToUsername   string     `gorm:"not null;index" json:"to_username"`
	Body         string     `gorm:"not null;type:text" json:"body"`
	SentAt       time.Time  `gorm:"not null" json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`

	// Associations
	FromUser User `gorm:"foreignKey:FromUsername;references:Username" json:"from_user,omitempty"`
	ToUser   User `gorm:"foreignKey:ToUsername;references:Username" json:"to_user,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
