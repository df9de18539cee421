package models

import "fmt"

// Role is the closed set of account roles. Registration, login, and route
// guards dispatch on it exhaustively instead of comparing raw strings.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
