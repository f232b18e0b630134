package service

import (
	"context"
	"errors"
	"testing"

	"minasle/backend/internal/dto"
	"minasle/backend/internal/model"
)

func TestAdminCriarUsuario(t *testing.T) {
	repo, s := newTestRepo()
	escola := s.addEscola("Escola Central")
	svc := NewAdminService(repo)
	ctx := context.Background()

	usuario, err := svc.CriarUsuario(ctx, &dto.AdminCreateUsuarioRequest{
		Nome: "Maria", Email: "maria@minasle.org", Senha: "segredo1",
		TipoUsuario: model.TipoPedagogo, EscolaID: escola.ID,
	})
	if err != nil {
		t.Fatalf("CriarUsuario: %v", err)
	}
	if usuario.TipoUsuario != model.TipoPedagogo {
		t.Errorf("tipo_usuario = %q, esperado %q", usuario.TipoUsuario, model.TipoPedagogo)
	}
	if usuario.SenhaHash == "segredo1" {
		t.Error("senha armazenada em texto puro")
	}

	_, err = svc.CriarUsuario(ctx, &dto.AdminCreateUsuarioRequest{
		Nome: "Outra", Email: "maria@minasle.org", Senha: "segredo1",
		TipoUsuario: model.TipoAluno, EscolaID: escola.ID,
	})
	if !errors.Is(err, ErrEmailJaCadastrado) {
		t.Errorf("email repetido: err = %v, esperado ErrEmailJaCadastrado", err)
	}

	_, err = svc.CriarUsuario(ctx, &dto.AdminCreateUsuarioRequest{
		Nome: "Sem Escola", Email: "solta@minasle.org", Senha: "segredo1",
		TipoUsuario: model.TipoAluno, EscolaID: 99,
	})
	if !errors.Is(err, ErrEscolaNaoEncontrada) {
		t.Errorf("escola inexistente: err = %v, esperado ErrEscolaNaoEncontrada", err)
	}
}

func TestAdminDeletarUsuarioCascateia(t *testing.T) {
	repo, s := newTestRepo()
	escola := s.addEscola("Escola Central")
	aluno := s.addUsuario("Pedro", "pedro@minasle.org", model.TipoAluno, escola.ID)
	livro := s.addLivro("Sagarana", true)
	s.addLeitura(aluno.ID, livro.ID, 100, 100)

	svc := NewAdminService(repo)
	ctx := context.Background()

	if err := svc.DeletarUsuario(ctx, aluno.ID); err != nil {
		t.Fatalf("DeletarUsuario: %v", err)
	}
	if len(s.leituras) != 0 {
		t.Errorf("leituras restantes após remoção = %d, esperado 0", len(s.leituras))
	}

	if err := svc.DeletarUsuario(ctx, aluno.ID); !errors.Is(err, ErrUsuarioNaoEncontrado) {
		t.Errorf("remoção repetida: err = %v, esperado ErrUsuarioNaoEncontrado", err)
	}
}

func TestAdminDeletarEscolaComUsuarios(t *testing.T) {
	repo, s := newTestRepo()
	ocupada := s.addEscola("Escola Ocupada")
	vazia := s.addEscola("Escola Vazia")
	s.addUsuario("Pedro", "pedro@minasle.org", model.TipoAluno, ocupada.ID)

	svc := NewAdminService(repo)
	ctx := context.Background()

	if err := svc.DeletarEscola(ctx, ocupada.ID); !errors.Is(err, ErrEscolaComUsuarios) {
		t.Errorf("escola com usuários: err = %v, esperado ErrEscolaComUsuarios", err)
	}
	if err := svc.DeletarEscola(ctx, vazia.ID); err != nil {
		t.Errorf("escola vazia deveria ser removida: %v", err)
	}
	if err := svc.DeletarEscola(ctx, 99); !errors.Is(err, ErrEscolaNaoEncontrada) {
		t.Errorf("escola inexistente: err = %v, esperado ErrEscolaNaoEncontrada", err)
	}
}
