package domain

import "time"

// AdminUser is a row in the credential table. The password hash is never
// serialized.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthUser is the identity attached to an authenticated request and echoed
// back in login/verify responses.
type AuthUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
