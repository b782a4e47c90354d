package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles carried by issued tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims is the JWT claim set issued by the server. The subject holds the
// user ID (or the admin email for admin tokens).
type Claims struct {
	jwt.RegisteredClaims

	// Role is either [RoleUser] or [RoleAdmin].
	Role string `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token ready to be
// sent in the Authorization header. Subject and Role are parsed copies of
// the claims so handlers never touch the jwt package directly.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	Subject string `json:"-"`
	Role    string `json:"-"`
}

// IsAdmin reports whether the token was issued to the administrator.
func (t Token) IsAdmin() bool {
	return t.Role == RoleAdmin
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
