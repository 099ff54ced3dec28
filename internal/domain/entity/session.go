package entity

import "time"

// Session is an authenticated login: a bearer token and its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}
