package response

// AuthUser is the account summary returned with a token
type AuthUser struct {
	ID    string `json:"id" example:"65a1f0c2a1b2c3d4e5f60719"`
	Email string `json:"email" example:"jane@example.com"`
	Name  string `json:"name" example:"Jane"`
	Role  string `json:"role" example:"user"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}
