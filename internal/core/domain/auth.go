package domain

// Credentials is the login request body. The password is plaintext for the
// duration of the request only and is never persisted.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the freshly minted session token back to the client.
type LoginResponse struct {
	Token string `json:"token"`
}
