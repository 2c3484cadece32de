package model

import "time"

// Account represents a registered user of the order desk.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
