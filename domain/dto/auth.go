package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// AuthStatusResponse is returned by /auth/status for both authenticated and
// anonymous callers; Username is null when anonymous.
type AuthStatusResponse struct {
	IsAuthenticated bool    `json:"is_authenticated"`
	Username        *string `json:"username"`
}

type SessionResponse struct {
	Message         string `json:"message"`
	IsAuthenticated bool   `json:"is_authenticated"`
	Username        string `json:"username,omitempty"`
}
