package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"minasle/backend/config"
	"minasle/backend/internal/api/handler"
	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
	"minasle/backend/internal/service"
	"minasle/backend/pkg/jwt"
)

// memDB is a minimal in-memory stand-in for the Postgres repositories,
// enough to drive the HTTP surface under test.
type memDB struct {
	nextID     uint
	escolas    map[uint]*model.Escola
	usuarios   map[uint]*model.Usuario
	livros     map[uint]*model.Livro
	leituras   map[uint]*model.Leitura
	atividades map[uint]*model.AtividadeGamificacao
	conquistas map[string]*model.ConquistaUsuario
	clubes     map[uint]*model.ClubeLeitura
	membros    map[string]*model.MembroClube
}

func newMemDB() *memDB {
	return &memDB{
		escolas:    make(map[uint]*model.Escola),
		usuarios:   make(map[uint]*model.Usuario),
		livros:     make(map[uint]*model.Livro),
		leituras:   make(map[uint]*model.Leitura),
		atividades: make(map[uint]*model.AtividadeGamificacao),
		conquistas: make(map[string]*model.ConquistaUsuario),
		clubes:     make(map[uint]*model.ClubeLeitura),
		membros:    make(map[string]*model.MembroClube),
	}
}

func parChave(a, b uint) string { return fmt.Sprintf("%d-%d", a, b) }

func (d *memDB) id() uint { d.nextID++; return d.nextID }

type memEscolas struct{ d *memDB }

func (r *memEscolas) Create(_ context.Context, e *model.Escola) error {
	e.ID = r.d.id()
	r.d.escolas[e.ID] = e
	return nil
}
func (r *memEscolas) GetByID(_ context.Context, id uint) (*model.Escola, error) {
	if e, ok := r.d.escolas[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memEscolas) List(_ context.Context) ([]model.Escola, error) {
	out := make([]model.Escola, 0, len(r.d.escolas))
	for _, e := range r.d.escolas {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *memEscolas) CountUsuarios(_ context.Context, escolaID uint) (int64, error) {
	var n int64
	for _, u := range r.d.usuarios {
		if u.EscolaID == escolaID {
			n++
		}
	}
	return n, nil
}
func (r *memEscolas) Delete(_ context.Context, id uint) error {
	delete(r.d.escolas, id)
	return nil
}

type memUsuarios struct{ d *memDB }

func (r *memUsuarios) Create(_ context.Context, u *model.Usuario) error {
	for _, e := range r.d.usuarios {
		if e.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = r.d.id()
	r.d.usuarios[u.ID] = u
	return nil
}
func (r *memUsuarios) GetByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.d.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	cp.Escola = r.d.escolas[u.EscolaID]
	return &cp, nil
}
func (r *memUsuarios) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.d.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memUsuarios) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.d.usuarios))
	for _, u := range r.d.usuarios {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *memUsuarios) Delete(_ context.Context, id uint) error {
	delete(r.d.usuarios, id)
	return nil
}

type memLivros struct{ d *memDB }

func (r *memLivros) Create(_ context.Context, l *model.Livro) error {
	l.ID = r.d.id()
	r.d.livros[l.ID] = l
	return nil
}
func (r *memLivros) GetByID(_ context.Context, id uint) (*model.Livro, error) {
	if l, ok := r.d.livros[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memLivros) List(_ context.Context, filtros repository.LivroFiltros) ([]model.Livro, error) {
	out := make([]model.Livro, 0, len(r.d.livros))
	for _, l := range r.d.livros {
		if filtros.ObraRegional != nil && l.ObraRegional != *filtros.ObraRegional {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *memLivros) Update(_ context.Context, l *model.Livro) error {
	r.d.livros[l.ID] = l
	return nil
}
func (r *memLivros) Delete(_ context.Context, id uint) error {
	delete(r.d.livros, id)
	return nil
}

type memLeituras struct{ d *memDB }

func (r *memLeituras) Create(_ context.Context, l *model.Leitura) error {
	for _, e := range r.d.leituras {
		if e.UsuarioID == l.UsuarioID && e.LivroID == l.LivroID {
			return gorm.ErrDuplicatedKey
		}
	}
	l.ID = r.d.id()
	r.d.leituras[l.ID] = l
	return nil
}
func (r *memLeituras) GetByID(_ context.Context, id uint) (*model.Leitura, error) {
	if l, ok := r.d.leituras[id]; ok {
		cp := *l
		cp.Livro = r.d.livros[l.LivroID]
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memLeituras) GetByUsuarioAndLivro(_ context.Context, usuarioID, livroID uint) (*model.Leitura, error) {
	for _, l := range r.d.leituras {
		if l.UsuarioID == usuarioID && l.LivroID == livroID {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memLeituras) ListByUsuario(_ context.Context, usuarioID uint) ([]model.Leitura, error) {
	out := make([]model.Leitura, 0)
	for _, l := range r.d.leituras {
		if l.UsuarioID == usuarioID {
			cp := *l
			cp.Livro = r.d.livros[l.LivroID]
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *memLeituras) Update(_ context.Context, l *model.Leitura) error {
	cp := *l
	cp.Livro = nil
	r.d.leituras[l.ID] = &cp
	return nil
}
func (r *memLeituras) EstatisticasUsuario(_ context.Context, usuarioID uint) (*repository.EstatisticasUsuario, error) {
	stats := &repository.EstatisticasUsuario{}
	var soma int64
	for _, l := range r.d.leituras {
		if l.UsuarioID != usuarioID {
			continue
		}
		stats.Total++
		soma += int64(l.Progresso)
		stats.Pontuacao += int64(l.Pontuacao)
		if l.Progresso == 100 {
			stats.Completas++
		}
	}
	if stats.Total > 0 {
		stats.ProgressoMedio = float64(soma) / float64(stats.Total)
	}
	return stats, nil
}
func (r *memLeituras) EstatisticasEscola(_ context.Context, _ uint) (*repository.EstatisticasEscola, error) {
	return &repository.EstatisticasEscola{}, nil
}
func (r *memLeituras) Ranking(_ context.Context, limit int) ([]repository.RankingRow, error) {
	rows := make([]repository.RankingRow, 0)
	for _, u := range r.d.usuarios {
		if u.TipoUsuario != model.TipoAluno {
			continue
		}
		row := repository.RankingRow{UsuarioID: u.ID, Nome: u.Nome}
		for _, l := range r.d.leituras {
			if l.UsuarioID == u.ID {
				row.Pontuacao += int64(l.Pontuacao)
			}
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Pontuacao != rows[j].Pontuacao {
			return rows[i].Pontuacao > rows[j].Pontuacao
		}
		return rows[i].UsuarioID < rows[j].UsuarioID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type memAtividades struct{ d *memDB }

func (r *memAtividades) Create(_ context.Context, a *model.AtividadeGamificacao) error {
	a.ID = r.d.id()
	r.d.atividades[a.ID] = a
	return nil
}
func (r *memAtividades) GetByID(_ context.Context, id uint) (*model.AtividadeGamificacao, error) {
	if a, ok := r.d.atividades[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memAtividades) List(_ context.Context) ([]model.AtividadeGamificacao, error) {
	out := make([]model.AtividadeGamificacao, 0, len(r.d.atividades))
	for _, a := range r.d.atividades {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *memAtividades) FirstByTipo(_ context.Context, tipo string) (*model.AtividadeGamificacao, error) {
	atividades, _ := r.List(context.Background())
	for i := range atividades {
		if atividades[i].Tipo == tipo {
			return &atividades[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type memConquistas struct{ d *memDB }

func (r *memConquistas) Create(_ context.Context, c *model.ConquistaUsuario) error {
	chave := parChave(c.UsuarioID, c.AtividadeID)
	if _, ok := r.d.conquistas[chave]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.d.conquistas[chave] = c
	return nil
}
func (r *memConquistas) Get(_ context.Context, usuarioID, atividadeID uint) (*model.ConquistaUsuario, error) {
	if c, ok := r.d.conquistas[parChave(usuarioID, atividadeID)]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memConquistas) ListByUsuario(_ context.Context, usuarioID uint) ([]model.ConquistaUsuario, error) {
	out := make([]model.ConquistaUsuario, 0)
	for _, c := range r.d.conquistas {
		if c.UsuarioID == usuarioID {
			cp := *c
			cp.Atividade = r.d.atividades[c.AtividadeID]
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AtividadeID < out[j].AtividadeID })
	return out, nil
}

type memClubes struct{ d *memDB }

func (r *memClubes) Create(_ context.Context, c *model.ClubeLeitura) error {
	c.ID = r.d.id()
	r.d.clubes[c.ID] = c
	return nil
}
func (r *memClubes) GetByID(_ context.Context, id uint) (*model.ClubeLeitura, error) {
	if c, ok := r.d.clubes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memClubes) List(_ context.Context) ([]model.ClubeLeitura, error) {
	out := make([]model.ClubeLeitura, 0, len(r.d.clubes))
	for _, c := range r.d.clubes {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
func (r *memClubes) CountMembros(_ context.Context, clubeID uint) (int64, error) {
	var n int64
	for _, m := range r.d.membros {
		if m.ClubeID == clubeID {
			n++
		}
	}
	return n, nil
}
func (r *memClubes) AddMembro(_ context.Context, m *model.MembroClube) error {
	chave := parChave(m.ClubeID, m.UsuarioID)
	if _, ok := r.d.membros[chave]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.d.membros[chave] = m
	return nil
}
func (r *memClubes) GetMembro(_ context.Context, clubeID, usuarioID uint) (*model.MembroClube, error) {
	if m, ok := r.d.membros[parChave(clubeID, usuarioID)]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (r *memClubes) RemoveMembro(_ context.Context, clubeID, usuarioID uint) error {
	delete(r.d.membros, parChave(clubeID, usuarioID))
	return nil
}
func (r *memClubes) ListMembros(_ context.Context, clubeID uint) ([]model.MembroClube, error) {
	out := make([]model.MembroClube, 0)
	for _, m := range r.d.membros {
		if m.ClubeID == clubeID {
			cp := *m
			cp.Usuario = r.d.usuarios[m.UsuarioID]
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UsuarioID < out[j].UsuarioID })
	return out, nil
}

type memAcompanhamentos struct{ d *memDB }

func (r *memAcompanhamentos) Create(_ context.Context, a *model.AcompanhamentoPedagogico) error {
	a.ID = r.d.id()
	return nil
}
func (r *memAcompanhamentos) ListByAluno(_ context.Context, _ uint) ([]model.AcompanhamentoPedagogico, error) {
	return nil, nil
}

type testEnv struct {
	engine *gin.Engine
	db     *memDB
	jwtMgr *jwt.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newMemDB()
	repo := &repository.Repository{
		Escola:         &memEscolas{db},
		Usuario:        &memUsuarios{db},
		Livro:          &memLivros{db},
		Leitura:        &memLeituras{db},
		Atividade:      &memAtividades{db},
		Conquista:      &memConquistas{db},
		Clube:          &memClubes{db},
		Acompanhamento: &memAcompanhamentos{db},
	}

	cfg := &config.Config{}
	cfg.Server.Port = 8080
	cfg.Server.StaticDir = t.TempDir()
	cfg.Server.CORS.AllowOrigins = []string{"http://localhost:5173"}
	cfg.Auth.JWTSecret = "chave-de-teste-minasle"
	cfg.Auth.TokenTTL = time.Hour

	logger := zap.NewNop()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := service.NewService(repo, jwtMgr, nil, logger)
	h := handler.NewHandler(svc, cfg, logger)

	return &testEnv{
		engine: Setup(cfg, h, jwtMgr, nil, logger),
		db:     db,
		jwtMgr: jwtMgr,
	}
}

func (e *testEnv) addEscola(nome string) *model.Escola {
	escola := &model.Escola{ID: e.db.id(), Nome: nome, Cidade: "Belo Horizonte", Estado: "Minas Gerais"}
	e.db.escolas[escola.ID] = escola
	return escola
}

func (e *testEnv) addUsuario(nome, email, tipo string, escolaID uint) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	u := &model.Usuario{ID: e.db.id(), Nome: nome, Email: email,
		SenhaHash: string(hash), TipoUsuario: tipo, EscolaID: escolaID}
	e.db.usuarios[u.ID] = u
	return u
}

func (e *testEnv) addAtividade(nome, tipo string, pontos int) *model.AtividadeGamificacao {
	a := &model.AtividadeGamificacao{ID: e.db.id(), Nome: nome, Tipo: tipo, Pontos: pontos}
	e.db.atividades[a.ID] = a
	return a
}

func (e *testEnv) addClube(nome string, pedagogoID uint) *model.ClubeLeitura {
	c := &model.ClubeLeitura{ID: e.db.id(), Nome: nome, PedagogoID: pedagogoID, DataCriacao: time.Now()}
	e.db.clubes[c.ID] = c
	return c
}

func (e *testEnv) token(u *model.Usuario) string {
	token, _ := e.jwtMgr.GenerateToken(u.ID, u.TipoUsuario, u.EscolaID)
	return token
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("resposta não é JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["sucesso"] != true || body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRegisterLoginMe(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")

	w := env.do(http.MethodPost, "/api/register", "", map[string]any{
		"nome": "Pedro Henrique", "email": "pedro@minasle.org",
		"senha": "segredo1", "escola_id": escola.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d: %s", w.Code, w.Body.String())
	}

	w = env.do(http.MethodPost, "/api/login", "", map[string]any{
		"email": "pedro@minasle.org", "senha": "segredo1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login sem token")
	}

	foundCookie := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "minasle_token" && c.Value == token && c.HttpOnly {
			foundCookie = true
		}
	}
	if !foundCookie {
		t.Error("cookie minasle_token ausente ou sem HttpOnly")
	}

	w = env.do(http.MethodGet, "/api/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d: %s", w.Code, w.Body.String())
	}
	me := decode(t, w)
	usuario, _ := me["usuario"].(map[string]any)
	if usuario["email"] != "pedro@minasle.org" {
		t.Errorf("me = %v", me)
	}
	if _, exposto := usuario["senha_hash"]; exposto {
		t.Error("hash de senha exposto na resposta")
	}
}

func TestAuthViaCookie(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	aluno := env.addUsuario("Pedro", "pedro@minasle.org", model.TipoAluno, escola.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "minasle_token", Value: env.token(aluno)})
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginCredenciaisInvalidas(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	env.addUsuario("Pedro", "pedro@minasle.org", model.TipoAluno, escola.ID)

	w := env.do(http.MethodPost, "/api/login", "", map[string]any{
		"email": "pedro@minasle.org", "senha": "errada",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["erro"] == nil || body["sucesso"] != nil {
		t.Errorf("envelope de erro inesperado: %v", body)
	}
}

func TestRotasProtegidasSemToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/me", "/api/leituras", "/api/clubes"} {
		w := env.do(http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s sem token: status = %d, esperado 401", path, w.Code)
		}
	}
}

func TestMutacaoDeCatalogoExigePedagogo(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	aluno := env.addUsuario("Pedro", "pedro@minasle.org", model.TipoAluno, escola.ID)
	pedagogo := env.addUsuario("Maria", "maria@minasle.org", model.TipoPedagogo, escola.ID)

	payload := map[string]any{"titulo": "Sagarana", "autor": "Guimarães Rosa"}

	w := env.do(http.MethodPost, "/api/livros", env.token(aluno), payload)
	if w.Code != http.StatusForbidden {
		t.Errorf("aluno criando livro: status = %d, esperado 403", w.Code)
	}

	w = env.do(http.MethodPost, "/api/livros", env.token(pedagogo), payload)
	if w.Code != http.StatusCreated {
		t.Errorf("pedagogo criando livro: status = %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminExigePedagogo(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	aluno := env.addUsuario("Pedro", "pedro@minasle.org", model.TipoAluno, escola.ID)
	pedagogo := env.addUsuario("Maria", "maria@minasle.org", model.TipoPedagogo, escola.ID)

	w := env.do(http.MethodGet, "/api/admin/usuarios", env.token(aluno), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("aluno no admin: status = %d, esperado 403", w.Code)
	}

	w = env.do(http.MethodGet, "/api/admin/usuarios", env.token(pedagogo), nil)
	if w.Code != http.StatusOK {
		t.Errorf("pedagogo no admin: status = %d: %s", w.Code, w.Body.String())
	}
}

func TestCatalogoPublico(t *testing.T) {
	env := newTestEnv(t)
	livro := &model.Livro{ID: env.db.id(), Titulo: "Sagarana", Autor: "Guimarães Rosa", ObraRegional: true}
	env.db.livros[livro.ID] = livro

	w := env.do(http.MethodGet, "/api/livros", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["sucesso"] != true || body["total"] != float64(1) {
		t.Errorf("body = %v", body)
	}

	w = env.do(http.MethodGet, "/api/livros/regionais", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("regionais status = %d", w.Code)
	}

	w = env.do(http.MethodGet, fmt.Sprintf("/api/livros/%d", livro.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detalhe status = %d", w.Code)
	}

	w = env.do(http.MethodGet, "/api/livros/999", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("livro inexistente: status = %d, esperado 404", w.Code)
	}
}

func TestFluxoDeLeituraHTTP(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	aluno := env.addUsuario("Pedro", "pedro@minasle.org", model.TipoAluno, escola.ID)
	livro := &model.Livro{ID: env.db.id(), Titulo: "Sagarana", Autor: "Guimarães Rosa", ObraRegional: true}
	env.db.livros[livro.ID] = livro
	token := env.token(aluno)

	w := env.do(http.MethodPost, "/api/leituras", token, map[string]any{"livro_id": livro.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("iniciar: status = %d: %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	leitura, _ := body["leitura"].(map[string]any)
	leituraID := uint(leitura["id"].(float64))

	// idempotent: second start returns the existing reading with 200
	w = env.do(http.MethodPost, "/api/leituras", token, map[string]any{"livro_id": livro.ID})
	if w.Code != http.StatusOK {
		t.Errorf("reinício: status = %d, esperado 200", w.Code)
	}

	w = env.do(http.MethodPut, fmt.Sprintf("/api/leituras/%d", leituraID), token, map[string]any{"progresso": 100})
	if w.Code != http.StatusOK {
		t.Fatalf("progresso: status = %d: %s", w.Code, w.Body.String())
	}

	w = env.do(http.MethodPut, fmt.Sprintf("/api/leituras/%d", leituraID), token, map[string]any{"progresso": 150})
	if w.Code != http.StatusBadRequest {
		t.Errorf("progresso 150: status = %d, esperado 400", w.Code)
	}

	w = env.do(http.MethodGet, "/api/leituras/estatisticas", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("estatísticas: status = %d: %s", w.Code, w.Body.String())
	}
	stats := decode(t, w)["estatisticas"].(map[string]any)
	if stats["pontuacao_total"] != float64(100) {
		t.Errorf("pontuacao_total = %v, esperado 100", stats["pontuacao_total"])
	}
}

func TestRotaAPIDesconhecidaRetornaJSON(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/nao-existe", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["erro"] == nil {
		t.Errorf("404 de API sem envelope de erro: %s", w.Body.String())
	}
}

func TestConsoleAdminServeHTML(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/admin", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type = %q", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("MinasLê")) {
		t.Error("console sem o título esperado")
	}
}

func TestValidacaoDeEntrada(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	pedagogo := env.addUsuario("Maria", "maria@minasle.org", model.TipoPedagogo, escola.ID)

	// short password
	w := env.do(http.MethodPost, "/api/register", "", map[string]any{
		"nome": "Ana", "email": "ana@minasle.org", "senha": "123", "escola_id": escola.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("senha curta: status = %d, esperado 400", w.Code)
	}

	// nota_engajamento out of scale
	w = env.do(http.MethodPost, "/api/acompanhamentos", env.token(pedagogo), map[string]any{
		"aluno_id": 1, "nota_engajamento": 11,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("nota 11: status = %d, esperado 400", w.Code)
	}
}

func TestRegisterEmailDuplicadoRetorna400(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")

	corpo := map[string]any{
		"nome": "Pedro Henrique", "email": "pedro@minasle.org",
		"senha": "segredo1", "escola_id": escola.ID,
	}
	if w := env.do(http.MethodPost, "/api/register", "", corpo); w.Code != http.StatusCreated {
		t.Fatalf("primeiro register: status = %d: %s", w.Code, w.Body.String())
	}

	w := env.do(http.MethodPost, "/api/register", "", corpo)
	if w.Code != http.StatusBadRequest {
		t.Errorf("email repetido: status = %d, esperado 400", w.Code)
	}
	if body := decode(t, w); body["erro"] != "Email já cadastrado" {
		t.Errorf("erro = %q", body["erro"])
	}
}

func TestConcederConquistaDuplicadaRetorna400(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	pedagogo := env.addUsuario("Maria", "maria@minasle.org", model.TipoPedagogo, escola.ID)
	aluno := env.addUsuario("João", "joao@minasle.org", model.TipoAluno, escola.ID)
	atividade := env.addAtividade("Resenha publicada", "resenha", 30)

	corpo := map[string]any{"usuario_id": aluno.ID, "atividade_id": atividade.ID}
	if w := env.do(http.MethodPost, "/api/gamificacao/conquistas", env.token(pedagogo), corpo); w.Code != http.StatusCreated {
		t.Fatalf("primeira concessão: status = %d: %s", w.Code, w.Body.String())
	}

	w := env.do(http.MethodPost, "/api/gamificacao/conquistas", env.token(pedagogo), corpo)
	if w.Code != http.StatusBadRequest {
		t.Errorf("concessão repetida: status = %d, esperado 400", w.Code)
	}
}

func TestEntrarNoClubeDuplicadoRetorna400(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	pedagogo := env.addUsuario("Maria", "maria@minasle.org", model.TipoPedagogo, escola.ID)
	aluno := env.addUsuario("João", "joao@minasle.org", model.TipoAluno, escola.ID)
	clube := env.addClube("Leitores do Cerrado", pedagogo.ID)

	caminho := fmt.Sprintf("/api/clubes/%d/entrar", clube.ID)
	if w := env.do(http.MethodPost, caminho, env.token(aluno), nil); w.Code != http.StatusCreated {
		t.Fatalf("primeira entrada: status = %d: %s", w.Code, w.Body.String())
	}

	w := env.do(http.MethodPost, caminho, env.token(aluno), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("entrada repetida: status = %d, esperado 400", w.Code)
	}
}

func TestDeletarEscolaComUsuariosRetorna400(t *testing.T) {
	env := newTestEnv(t)
	escola := env.addEscola("Escola Central")
	pedagogo := env.addUsuario("Maria", "maria@minasle.org", model.TipoPedagogo, escola.ID)

	caminho := fmt.Sprintf("/api/admin/escolas/%d", escola.ID)
	w := env.do(http.MethodDelete, caminho, env.token(pedagogo), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("escola ocupada: status = %d, esperado 400", w.Code)
	}
}
