package handler

type changeEmailRequest struct {
	UserID       string `json:"userId"`
	NewEmail     string `json:"newEmail"`
	ConfirmEmail string `json:"confirmEmail,omitempty"`
}

type resetPasswordRequest struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
