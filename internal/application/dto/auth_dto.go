package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser usuario autenticado tal como lo espera el frontend legado.
type AuthUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthClient empresa (inquilino) de la sesión.
type AuthClient struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// LoginResponse datos de sesión. Token va vacío en el modo de despliegue
// legado (inquilino por defecto, sin login real).
type LoginResponse struct {
	User   AuthUser   `json:"user"`
	Client AuthClient `json:"client"`
	Token  string     `json:"token,omitempty"`
}

// StatusResponse respuesta de GET /auth/status.
type StatusResponse struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	User            AuthUser   `json:"user"`
	Client          AuthClient `json:"client"`
}
