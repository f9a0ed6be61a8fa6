package models

import "errors"

// Role is the closed set of authorization roles a user can hold.
// Any value outside the declared constants is invalid; use [ParseRole]
// or [Role.Valid] instead of comparing raw strings.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to all records regardless of ownership.
	RoleAdmin Role = "admin"
)

// ErrUnknownRole is returned by ParseRole for any value outside the
// declared role constants.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts a raw string into a Role, failing closed on any
// value that is not one of the declared constants.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// Valid reports whether the role is one of the declared constants.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user. Assigned once by the
	// repository, sequentially, and never reused after deletion.
	ID int64 `json:"id"`

	// Username is the unique login identifier of the account.
	Username string `json:"username"`

	// Email is the unique contact address supplied at registration.
	Email string `json:"email"`

	// PasswordHash stores the Argon2id-encoded password digest.
	// This value MUST be a derived value, never plaintext, and is excluded
	// from JSON serialization.
	PasswordHash string `json:"-"`

	// Role determines the authorization level of the account.
	Role Role `json:"role"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
