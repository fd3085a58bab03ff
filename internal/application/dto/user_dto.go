package dto

// RegisterRequest entrada para registro y para alta administrativa.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | user; otro valor -> user
}

// LoginRequest credenciales de login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida del login con el token firmado.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// MeResponse datos del usuario autenticado.
type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// UserResponse usuario en el listado administrativo (sin hash).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

// UpdateUserRequest cambios administrativos; FullName y Username son opcionales.
type UpdateUserRequest struct {
	FullName *string `json:"fullName"`
	Username *string `json:"username"`
	Role     string  `json:"role"`
}
