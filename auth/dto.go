package auth

// LoginRequest is the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"root"`
	Password string `json:"password" example:"swordfish"`
}

// SessionResponse is returned on successful login and registration: a
// fresh session token plus the public view of the account.
type SessionResponse struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Username string `json:"username" example:"root"`
	ID       int    `json:"id" example:"1"`
	Avatar   string `json:"avatar,omitempty" example:"https://example.com/a.png"`
}
