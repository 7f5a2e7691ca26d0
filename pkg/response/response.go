package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DataResponse struct {
	Data any `json:"data"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
	FullName string `json:"full_name,omitempty"`
}

// AutoAssignResponse mirrors the triage endpoint contract.
type AutoAssignResponse struct {
	Success       bool   `json:"success"`
	AssignedCount int    `json:"assigned_count"`
	Message       string `json:"message"`
}
