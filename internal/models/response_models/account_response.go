package response_models

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type AccountResponse struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	RoleID int    `json:"role_id"`
}
