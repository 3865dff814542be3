package dto

// LoginRequest entrada para login por username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT y agente autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	Agent AgentResponse `json:"agent"`
}

// PasswordResetRequest solicitud de restablecimiento por correo.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetResponse respuesta neutra: no revela si el correo existe.
type PasswordResetResponse struct {
	Message string `json:"message"`
}

// PasswordResetConfirm token recibido por correo y la nueva contraseña.
type PasswordResetConfirm struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
