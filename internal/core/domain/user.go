package domain

import "time"

// Role identifies which side of the platform an account belongs to.
type Role string

const (
	RoleClient Role = "client"
	RoleLawyer Role = "lawyer"
)

// Valid reports whether the role is one of the two supported account types.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleLawyer
}

// User models a platform account. Lawyer-only profile fields are optional and
// empty for clients. PasswordHash is part of the persisted snapshot; callers
// hand out Redacted copies, never the stored record.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Photo        string    `json:"photo,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Specialty    string    `json:"specialty,omitempty"`
	Experience   int       `json:"experience,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	Fees         string    `json:"fees,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Redacted returns a copy safe to serialize in API responses.
func (u User) Redacted() *User {
	u.PasswordHash = ""
	return &u
}

// Session binds a bearer token to the user it authenticates. Token and user
// are persisted as one record so they are always written and cleared together.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}
