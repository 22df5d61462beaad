package domain

import "time"

// Session correlates a browser to a logged-in user. The ID is the
// opaque token carried by the session cookie.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Active reports whether the session is still valid at the given instant.
func (s Session) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
