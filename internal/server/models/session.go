package models

import "time"

// Session maps an opaque bearer token to a user. The raw token is stored
// as-is; a row is valid only while ExpiresAt is in the future.
type Session struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	IPAddress *string
	UserAgent *string
}
