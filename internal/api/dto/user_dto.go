package dto

import (
	"time"

	"messagely/internal/api/models"
)

// UserSummary is the public shape of a user record.
type UserSummary struct {
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	JoinAt      time.Time `json:"join_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// FromModelToUserSummary converts a User model to its public shape
func FromModelToUserSummary(user *models.User) UserSummary {
	return UserSummary{
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		JoinAt:      user.JoinAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// FromModelsToUserSummaries converts a list of User models
func FromModelsToUserSummaries(users []models.User) []UserSummary {
	summaries := make([]UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, FromModelToUserSummary(&users[i]))
	}
	return summaries
}
