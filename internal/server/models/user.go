package models

import (
	"database/sql"
	"time"
)

// User is a stored account record. Username is the primary identity and is
// immutable. Token holds the current session token; it is NULL when the user
// is logged out, and the store enforces that no two users hold the same
// non-null token at the same time.
type User struct {
	UserName     string
	PasswordHash string
	Name         string
	Token        sql.NullString
	CreatedAt    time.Time
}
