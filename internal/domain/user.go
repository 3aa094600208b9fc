package domain

import "time"

// Role separates the two kinds of accounts on the board.
type Role string

const (
	RoleEmployer  Role = "employer"
	RoleCandidate Role = "candidate"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleCandidate
}

// User is an account that either posts jobs or applies to them.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
