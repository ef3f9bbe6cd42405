package dto

// RegisterRequest entrada para registro self-service (rol por defecto).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateUserRequest entrada para aprovisionamiento admin (rol explícito 1–5).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     int    `json:"role" validate:"required,min=1,max=5"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     int    `json:"role"`
	Locked   bool   `json:"locked"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
