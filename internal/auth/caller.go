package auth

// Caller is the identity a request runs as. The zero value is anonymous.
type Caller struct {
	UserID string
	Email  string
	Role   Role
}

// Anonymous returns the identity of a request without a valid token
func Anonymous() Caller {
	return Caller{}
}

// IsAuthenticated reports whether the caller carried a verified token
func (c Caller) IsAuthenticated() bool {
	return c.UserID != ""
}

// IsAdmin reports whether the caller is an authenticated admin
func (c Caller) IsAdmin() bool {
	return c.IsAuthenticated() && c.Role == RoleAdmin
}
