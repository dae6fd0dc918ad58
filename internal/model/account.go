package model

import "time"

// Role is the access tier of an account
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the two known tiers
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// IsAdmin reports whether the role grants admin access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Account represents a stored identity
type Account struct {
	ID           int64
	Username     string // login username, unique at creation time
	PasswordHash string // bcrypt hash
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
