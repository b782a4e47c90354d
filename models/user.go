package models

import "time"

// User is an account that owns fuel entries.
type User struct {
	// ID is the opaque user identifier (UUID v7).
	ID string `json:"id"`

	// Email is unique across all users and is used as the login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. It never leaves the
	// server.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment of sign-up.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of sign-up and sign-in requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned after a successful sign-up or sign-in.
type AuthResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// AdminAuthResponse is returned after a successful admin sign-in.
type AdminAuthResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}
