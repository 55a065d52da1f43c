package models

import (
	"database/sql"
	"time"
)

// User is an identity record. PasswordHash is NULL for accounts created
// through OAuth; such accounts can never password-authenticate.
type User struct {
	ID           string
	Email        string
	PasswordHash sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
