package models

import (
	"time"
)

// User is the row shape of the users table.
type User struct {
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	PasswordHash   *string   `db:"password_hash"`
	Phone          string    `db:"phone"`
	AvatarURL      string    `db:"avatar_url"`
	AuthProvider   string    `db:"auth_provider"`
	ProviderUserID *string   `db:"provider_user_id"`
	CreatedAt      time.Time `db:"created_at"`
	LastUpdatedAt  time.Time `db:"last_updated_at"`
}
