package dto

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// RegisterRequest is the body of POST /api/register. TipoUsuario defaults to "aluno".
type RegisterRequest struct {
	Nome        string `json:"nome"         binding:"required,min=2,max=200"`
	Email       string `json:"email"        binding:"required,email"`
	Senha       string `json:"senha"        binding:"required,min=6,max=72"`
	TipoUsuario string `json:"tipo_usuario" binding:"omitempty,oneof=aluno pedagogo"`
	EscolaID    uint   `json:"escola_id"    binding:"required"`
}

// TokenResponse carries the issued access token and the authenticated user.
type TokenResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expires_in"` // seconds
	Usuario   UsuarioResponse `json:"usuario"`
}
