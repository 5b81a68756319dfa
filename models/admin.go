package models

import "time"

// Role separates the two principal namespaces. A token carries exactly one.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePartner Role = "partner"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RolePartner
}

// Principal is the stored account for either an admin or a partner. Admins
// and partners live in separate collections.
type Principal struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	LastLogin    time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// Session is the authenticated caller attached to a request.
type Session struct {
	PrincipalID string    `json:"id"`
	Username    string    `json:"username"`
	Role        Role      `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type PartnerRegistration struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"max=200"`
	Phone    string `json:"phone" validate:"max=40"`
}

// AuthResponse is returned by login.
type AuthResponse struct {
	Token     string    `json:"token"`
	Principal Principal `json:"principal"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
