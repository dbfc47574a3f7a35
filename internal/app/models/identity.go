package models

import "time"

// Identity is the verified subject of a bearer token. It is never persisted.
type Identity struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
