package domain

import (
	"time"
)

type User struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Bio           string    `json:"bio"`
	CalendarEmail *string   `json:"calendarEmail"` // nil when no calendar is connected
	CreatedAt     time.Time `json:"createdAt"`
	Version       int32     `json:"-"`
}

// CalendarAddress is where event invitations for this user are delivered.
func (u *User) CalendarAddress() string {
	if u.CalendarEmail != nil && *u.CalendarEmail != "" {
		return *u.CalendarEmail
	}
	return u.Email
}

type PublicProfile struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		Username: u.Username,
		Name:     u.Name,
		Bio:      u.Bio,
	}
}
