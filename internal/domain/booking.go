package domain

import "time"

type Booking struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"-"`
	Date         time.Time `json:"date"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Observations *string   `json:"observations"`
	CreatedAt    time.Time `json:"createdAt"`
}
