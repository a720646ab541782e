package models

import "time"

// User is a registered account. PasswordHash is a self-describing argon2id
// string that embeds its salt.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
