package models

import "time"

// User is keyed by username; usernames are immutable after registration.
type User struct {
	Username    string    `gorm:"primaryKey" json:"username"`
	Password    string    `gorm:"column:password_hash;not null" json:"-"` // never serialized
	FirstName   string    `gorm:"not null" json:"first_name"`
	LastName    string    `gorm:"not null" json:"last_name"`
	Phone       string    `gorm:"not null" json:"phone"`
	JoinAt      time.Time `gorm:"not null" json:"join_at"`
	LastLoginAt time.Time `gorm:"not null" json:"last_login_at"`
}

func (User) TableName() string {
	return "users"
}
