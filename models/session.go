package models

// Session is the signed-in state fuelctl keeps between invocations.
type Session struct {
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// IsAdmin reports whether the session holds an administrator token.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
