package request_models

// Credentials are validated by the account service so that a missing email
// and a missing password produce the same message.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   *int   `json:"role_id"`
}
