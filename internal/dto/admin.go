package dto

// CreateEscolaRequest is the body of POST /api/admin/escolas. Estado defaults to
// "Minas Gerais" in the schema when omitted.
type CreateEscolaRequest struct {
	Nome   string `json:"nome"   binding:"required,max=200"`
	Cidade string `json:"cidade" binding:"required,max=100"`
	Estado string `json:"estado" binding:"omitempty,max=50"`
}

// AdminCreateUsuarioRequest is the body of POST /api/admin/usuarios. Unlike /register,
// the role is mandatory here.
type AdminCreateUsuarioRequest struct {
	Nome        string `json:"nome"         binding:"required,min=2,max=200"`
	Email       string `json:"email"        binding:"required,email"`
	Senha       string `json:"senha"        binding:"required,min=6,max=72"`
	TipoUsuario string `json:"tipo_usuario" binding:"required,oneof=aluno pedagogo"`
	EscolaID    uint   `json:"escola_id"    binding:"required"`
}
