// Command seed populates a fresh database with demo schools, users, books
// and achievement definitions for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"minasle/backend/config"
	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
	"minasle/backend/pkg/database"
	"minasle/backend/pkg/logger"
)

// Every demo account logs in with this password.
const senhaDemo = "123456"

func main() {
	configPath := flag.String("config", "", "caminho do arquivo de configuração")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuração: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		log.Fatal("banco de dados indisponível", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("falha ao obter sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, log); err != nil {
		log.Fatal("falha nas migrações", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	ctx := context.Background()

	if err := seed(ctx, repo); err != nil {
		log.Fatal("falha ao popular banco", zap.Error(err))
	}

	log.Info("banco populado com dados de demonstração",
		zap.String("senha_demo", senhaDemo))
}

func seed(ctx context.Context, repo *repository.Repository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(senhaDemo), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	escolas := []model.Escola{
		{Nome: "Escola Estadual Ordem e Progresso", Cidade: "Belo Horizonte", Estado: "Minas Gerais"},
		{Nome: "Escola Municipal Carlos Drummond de Andrade", Cidade: "Itabira", Estado: "Minas Gerais"},
		{Nome: "Colégio Tiradentes", Cidade: "Ouro Preto", Estado: "Minas Gerais"},
		{Nome: "Escola Estadual João Guimarães Rosa", Cidade: "Cordisburgo", Estado: "Minas Gerais"},
	}
	for i := range escolas {
		if err := repo.Escola.Create(ctx, &escolas[i]); err != nil {
			return fmt.Errorf("escola %q: %w", escolas[i].Nome, err)
		}
	}

	usuarios := []model.Usuario{
		{Nome: "Maria Aparecida", Email: "maria.pedagoga@minasle.org", TipoUsuario: model.TipoPedagogo, EscolaID: escolas[0].ID},
		{Nome: "José Ricardo", Email: "jose.pedagogo@minasle.org", TipoUsuario: model.TipoPedagogo, EscolaID: escolas[1].ID},
		{Nome: "Ana Lúcia", Email: "ana.pedagoga@minasle.org", TipoUsuario: model.TipoPedagogo, EscolaID: escolas[2].ID},
		{Nome: "Pedro Henrique", Email: "pedro@minasle.org", TipoUsuario: model.TipoAluno, EscolaID: escolas[0].ID},
		{Nome: "Juliana Santos", Email: "juliana@minasle.org", TipoUsuario: model.TipoAluno, EscolaID: escolas[0].ID},
		{Nome: "Lucas Oliveira", Email: "lucas@minasle.org", TipoUsuario: model.TipoAluno, EscolaID: escolas[1].ID},
		{Nome: "Beatriz Lima", Email: "beatriz@minasle.org", TipoUsuario: model.TipoAluno, EscolaID: escolas[2].ID},
		{Nome: "Gabriel Costa", Email: "gabriel@minasle.org", TipoUsuario: model.TipoAluno, EscolaID: escolas[3].ID},
		{Nome: "Larissa Ferreira", Email: "larissa@minasle.org", TipoUsuario: model.TipoAluno, EscolaID: escolas[3].ID},
	}
	for i := range usuarios {
		usuarios[i].SenhaHash = string(hash)
		if err := repo.Usuario.Create(ctx, &usuarios[i]); err != nil {
			return fmt.Errorf("usuário %q: %w", usuarios[i].Email, err)
		}
	}

	livros := []model.Livro{
		{Titulo: "Grande Sertão: Veredas", Autor: "João Guimarães Rosa", Genero: "Romance", ObraRegional: true,
			Descricao: "A travessia de Riobaldo pelo sertão mineiro."},
		{Titulo: "Sagarana", Autor: "João Guimarães Rosa", Genero: "Contos", ObraRegional: true,
			Descricao: "Nove histórias do interior de Minas Gerais."},
		{Titulo: "Alguma Poesia", Autor: "Carlos Drummond de Andrade", Genero: "Poesia", ObraRegional: true,
			Descricao: "A estreia do poeta de Itabira."},
		{Titulo: "O Tempo e o Vento", Autor: "Erico Verissimo", Genero: "Romance", ObraRegional: false,
			Descricao: "A saga da família Terra Cambará."},
		{Titulo: "Dom Casmurro", Autor: "Machado de Assis", Genero: "Romance", ObraRegional: false,
			Descricao: "Bentinho, Capitu e a dúvida que atravessa gerações."},
		{Titulo: "Viagens na Minha Terra", Autor: "Bernardo Guimarães", Genero: "Crônica", ObraRegional: true,
			Descricao: "Paisagens e causos das Gerais."},
		{Titulo: "Quarto de Despejo", Autor: "Carolina Maria de Jesus", Genero: "Diário", ObraRegional: false,
			Descricao: "O diário de uma catadora de papel, nascida em Sacramento, MG."},
		{Titulo: "Vidas Secas", Autor: "Graciliano Ramos", Genero: "Romance", ObraRegional: false,
			Descricao: "A retirada de Fabiano e sua família pelo sertão."},
	}
	for i := range livros {
		if err := repo.Livro.Create(ctx, &livros[i]); err != nil {
			return fmt.Errorf("livro %q: %w", livros[i].Titulo, err)
		}
	}

	atividades := []model.AtividadeGamificacao{
		{Nome: "Primeira Leitura Completa", Descricao: "Concluiu a leitura de um livro", Pontos: 50, Tipo: model.TipoLeituraCompleta},
		{Nome: "Explorador Regional", Descricao: "Concluiu um livro de obra regional mineira", Pontos: 75, Tipo: "leitura_regional"},
		{Nome: "Leitor Assíduo", Descricao: "Concluiu cinco livros", Pontos: 150, Tipo: "leitor_assiduo"},
		{Nome: "Membro de Clube", Descricao: "Entrou em um clube de leitura", Pontos: 25, Tipo: "clube"},
		{Nome: "Maratonista Literário", Descricao: "Concluiu dez livros", Pontos: 300, Tipo: "maratonista"},
		{Nome: "Crítico Mirim", Descricao: "Participou das discussões de um clube", Pontos: 40, Tipo: "critico"},
	}
	for i := range atividades {
		if err := repo.Atividade.Create(ctx, &atividades[i]); err != nil {
			return fmt.Errorf("atividade %q: %w", atividades[i].Nome, err)
		}
	}

	return nil
}
