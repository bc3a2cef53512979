package user

import "strings"

// User represents a registered API user.
// Maps to the users table.
type User struct {
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"hash"` // never exposed
}

// ValidateEmail checks the minimal address requirement for registration
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@")
}
