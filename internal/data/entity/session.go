package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session resolves a bearer token to a user. Tokens are issued by an external
// identity provider; Role is joined from the users table on lookup.
type Session struct {
	Token     uuid.UUID `db:"token"`
	UserID    uuid.UUID `db:"user_id"`
	Role      string    `db:"role"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
