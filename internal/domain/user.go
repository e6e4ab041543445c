package domain

import "time"

// User is a bettor known to the eligibility check
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}
