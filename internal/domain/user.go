package domain

import "time"

// User is an administrative account. PasswordHash holds a bcrypt hash
// and is never exposed outside the credential service.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
