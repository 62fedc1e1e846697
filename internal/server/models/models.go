// Package models defines the server-side persistence types.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never
// leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Entry is one consumption event owned by a user. THCMg is computed
// server-side on create from the method-specific dose fields; Timestamp is
// derived from the date and time strings.
type Entry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	THCMg      float64   `json:"thc_mg"`
	Timestamp  time.Time `json:"timestamp"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Time       string    `json:"time"` // HH:MM
	Method     string    `json:"method"`
	Amount     string    `json:"amount"`
	Puffs      string    `json:"puffs"`
	THCPercent float64   `json:"thc_percent"`
	Strain     string    `json:"strain"`
	Mood       int       `json:"mood"`
	Energy     int       `json:"energy"`
	Focus      int       `json:"focus"`
	Creativity int       `json:"creativity"`
	Anxiety    int       `json:"anxiety"`
	Activities []string  `json:"activities"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}
