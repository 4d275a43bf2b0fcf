package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role enumerates the three account types.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleStaff   Role = "STAFF"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole validates a stored role token.
func ParseRole(raw string) (Role, error) {
	switch role := Role(strings.ToUpper(strings.TrimSpace(raw))); role {
	case RoleStudent, RoleStaff, RoleAdmin:
		return role, nil
	}
	return "", fmt.Errorf("invalid role %q", raw)
}

// User is the domain model for helpdesk accounts. Role is immutable after
// creation; there is no role-change operation.
type User struct {
	ID           string
	Username     string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
