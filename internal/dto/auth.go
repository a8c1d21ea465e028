package dto

// LoginRequest carries the credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the bearer token and the authenticated client.
type LoginResponse struct {
	Token  string         `json:"token"`
	Client ClientResponse `json:"client"`
}
