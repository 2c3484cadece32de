package model

import "time"

// Session maps an opaque token to the account it authenticates.
// The token is the only handle clients ever see.
type Session struct {
	Token     string
	AccountID int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Active reports whether the session is still usable at the given moment.
func (s Session) Active(at time.Time) bool {
	return at.Before(s.ExpiresAt)
}
