package request_models

// EditAccountRequest is checked by the account service so that an empty
// email and an unknown role id get their own messages.
type EditAccountRequest struct {
	Email  string `json:"email"`
	RoleID int    `json:"role_id"`
}
