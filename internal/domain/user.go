package domain

import (
	"strings"
	"time"
)

// Role represents user role
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleAgent  Role = "AGENT"
	RoleClient Role = "CLIENT"
)

// ParseRole normalizes an arbitrary role string to one of the fixed roles.
// Unknown values are returned uppercased with ok=false so callers can fall
// back to a safe default.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleAgent, RoleClient:
		return r, true
	}
	return r, false
}

// User represents a user entity on the server side
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         Role      `json:"role"`
	LanguageID   string    `json:"languageId,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session is the client-side view of the logged-in user. Name is always
// derived from the first and last names.
type Session struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	LanguageID string `json:"languageId,omitempty"`
}

// NewSession builds a Session from user fields, deriving Name and
// normalizing the role.
func NewSession(id, email, firstName, lastName, role, languageID string) Session {
	r, _ := ParseRole(role)
	return Session{
		ID:         id,
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Name:       firstName + " " + lastName,
		Role:       r,
		LanguageID: languageID,
	}
}
