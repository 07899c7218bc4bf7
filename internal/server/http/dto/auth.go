package dto

// LoginRequest describes the sign-in payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse reports the authenticated role back to the client.
type SessionResponse struct {
	Role string `json:"role"`
}

// RegisterRequest describes the admin account-provisioning payload.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
