// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// password hashing, HTTP response writing, HTTP client initialization,
// JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated subject in the
// context. For user tokens it is the user ID, for admin tokens the admin
// email.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190a6...")
var UserIDCtxKey = contextKey("userID")

// RoleCtxKey is the key used to store the role of the authenticated caller.
var RoleCtxKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated subject from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetRoleFromContext retrieves the role of the authenticated caller.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleCtxKey).(string)
	return role, ok && role != ""
}

// WithIdentity returns a copy of ctx carrying the subject and role.
func WithIdentity(ctx context.Context, subject, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, subject)
	return context.WithValue(ctx, RoleCtxKey, role)
}
