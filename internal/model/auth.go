package model

// LoginRequest is the DTO for administrator login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// AdminUser is the logged in administrator as returned by the remote API.
type AdminUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is the remote payload of POST /auth/login.
type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}
