package dto

import "time"

// AccountResponse is the account summary returned to its owner.
// The password hash never leaves the server.
type AccountResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
