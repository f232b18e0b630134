package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"minasle/backend/internal/model"
	"minasle/backend/internal/repository"
)

// store is the in-memory backing for every repository double. The doubles
// return the same gorm sentinel errors the Postgres-backed repositories
// surface through TranslateError, so the services under test see identical
// error shapes.
type store struct {
	nextID uint

	escolas         map[uint]*model.Escola
	usuarios        map[uint]*model.Usuario
	livros          map[uint]*model.Livro
	leituras        map[uint]*model.Leitura
	atividades      map[uint]*model.AtividadeGamificacao
	conquistas      map[[2]uint]*model.ConquistaUsuario
	clubes          map[uint]*model.ClubeLeitura
	membros         map[[2]uint]*model.MembroClube
	acompanhamentos map[uint]*model.AcompanhamentoPedagogico
}

func newStore() *store {
	return &store{
		escolas:         make(map[uint]*model.Escola),
		usuarios:        make(map[uint]*model.Usuario),
		livros:          make(map[uint]*model.Livro),
		leituras:        make(map[uint]*model.Leitura),
		atividades:      make(map[uint]*model.AtividadeGamificacao),
		conquistas:      make(map[[2]uint]*model.ConquistaUsuario),
		clubes:          make(map[uint]*model.ClubeLeitura),
		membros:         make(map[[2]uint]*model.MembroClube),
		acompanhamentos: make(map[uint]*model.AcompanhamentoPedagogico),
	}
}

func (s *store) id() uint {
	s.nextID++
	return s.nextID
}

// newTestRepo builds a repository aggregate over in-memory doubles. The
// aggregate has no database bound, so Transaction runs callbacks in place.
func newTestRepo() (*repository.Repository, *store) {
	s := newStore()
	return &repository.Repository{
		Escola:         &escolaMock{s},
		Usuario:        &usuarioMock{s},
		Livro:          &livroMock{s},
		Leitura:        &leituraMock{s},
		Atividade:      &atividadeMock{s},
		Conquista:      &conquistaMock{s},
		Clube:          &clubeMock{s},
		Acompanhamento: &acompanhamentoMock{s},
	}, s
}

// seeding helpers

func (s *store) addEscola(nome string) *model.Escola {
	e := &model.Escola{ID: s.id(), Nome: nome, Cidade: "Belo Horizonte", Estado: "Minas Gerais"}
	s.escolas[e.ID] = e
	return e
}

func (s *store) addUsuario(nome, email, tipo string, escolaID uint) *model.Usuario {
	u := &model.Usuario{ID: s.id(), Nome: nome, Email: email, SenhaHash: "x", TipoUsuario: tipo, EscolaID: escolaID}
	s.usuarios[u.ID] = u
	return u
}

func (s *store) addLivro(titulo string, regional bool) *model.Livro {
	l := &model.Livro{ID: s.id(), Titulo: titulo, Autor: "Autor", ObraRegional: regional}
	s.livros[l.ID] = l
	return l
}

func (s *store) addLeitura(usuarioID, livroID uint, progresso, pontuacao int) *model.Leitura {
	l := &model.Leitura{ID: s.id(), UsuarioID: usuarioID, LivroID: livroID, Progresso: progresso, Pontuacao: pontuacao}
	s.leituras[l.ID] = l
	return l
}

func (s *store) addAtividade(nome, tipo string, pontos int) *model.AtividadeGamificacao {
	a := &model.AtividadeGamificacao{ID: s.id(), Nome: nome, Descricao: nome, Pontos: pontos, Tipo: tipo}
	s.atividades[a.ID] = a
	return a
}

type escolaMock struct{ s *store }

func (m *escolaMock) Create(_ context.Context, escola *model.Escola) error {
	escola.ID = m.s.id()
	m.s.escolas[escola.ID] = escola
	return nil
}

func (m *escolaMock) GetByID(_ context.Context, id uint) (*model.Escola, error) {
	e, ok := m.s.escolas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (m *escolaMock) List(_ context.Context) ([]model.Escola, error) {
	out := make([]model.Escola, 0, len(m.s.escolas))
	for _, id := range sortedKeys(m.s.escolas) {
		out = append(out, *m.s.escolas[id])
	}
	return out, nil
}

func (m *escolaMock) CountUsuarios(_ context.Context, escolaID uint) (int64, error) {
	var n int64
	for _, u := range m.s.usuarios {
		if u.EscolaID == escolaID {
			n++
		}
	}
	return n, nil
}

func (m *escolaMock) Delete(_ context.Context, id uint) error {
	for _, u := range m.s.usuarios {
		if u.EscolaID == id {
			return gorm.ErrForeignKeyViolated
		}
	}
	delete(m.s.escolas, id)
	return nil
}

type usuarioMock struct{ s *store }

func (m *usuarioMock) Create(_ context.Context, usuario *model.Usuario) error {
	for _, u := range m.s.usuarios {
		if u.Email == usuario.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	usuario.ID = m.s.id()
	m.s.usuarios[usuario.ID] = usuario
	return nil
}

func (m *usuarioMock) GetByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := m.s.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	cp.Escola = m.s.escolas[u.EscolaID]
	return &cp, nil
}

func (m *usuarioMock) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range m.s.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *usuarioMock) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(m.s.usuarios))
	for _, id := range sortedKeys(m.s.usuarios) {
		cp := *m.s.usuarios[id]
		cp.Escola = m.s.escolas[cp.EscolaID]
		out = append(out, cp)
	}
	return out, nil
}

func (m *usuarioMock) Delete(_ context.Context, id uint) error {
	delete(m.s.usuarios, id)
	for lid, l := range m.s.leituras {
		if l.UsuarioID == id {
			delete(m.s.leituras, lid)
		}
	}
	for key := range m.s.conquistas {
		if key[0] == id {
			delete(m.s.conquistas, key)
		}
	}
	for key := range m.s.membros {
		if key[1] == id {
			delete(m.s.membros, key)
		}
	}
	for aid, a := range m.s.acompanhamentos {
		if a.AlunoID == id || a.PedagogoID == id {
			delete(m.s.acompanhamentos, aid)
		}
	}
	return nil
}

type livroMock struct{ s *store }

func (m *livroMock) Create(_ context.Context, livro *model.Livro) error {
	livro.ID = m.s.id()
	m.s.livros[livro.ID] = livro
	return nil
}

func (m *livroMock) GetByID(_ context.Context, id uint) (*model.Livro, error) {
	l, ok := m.s.livros[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (m *livroMock) List(_ context.Context, filtros repository.LivroFiltros) ([]model.Livro, error) {
	out := make([]model.Livro, 0, len(m.s.livros))
	for _, id := range sortedKeys(m.s.livros) {
		l := m.s.livros[id]
		if filtros.Genero != "" && l.Genero != filtros.Genero {
			continue
		}
		if filtros.Autor != "" && l.Autor != filtros.Autor {
			continue
		}
		if filtros.ObraRegional != nil && l.ObraRegional != *filtros.ObraRegional {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (m *livroMock) Update(_ context.Context, livro *model.Livro) error {
	if _, ok := m.s.livros[livro.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.s.livros[livro.ID] = livro
	return nil
}

func (m *livroMock) Delete(_ context.Context, id uint) error {
	delete(m.s.livros, id)
	for lid, l := range m.s.leituras {
		if l.LivroID == id {
			delete(m.s.leituras, lid)
		}
	}
	return nil
}

type leituraMock struct{ s *store }

func (m *leituraMock) Create(_ context.Context, leitura *model.Leitura) error {
	for _, l := range m.s.leituras {
		if l.UsuarioID == leitura.UsuarioID && l.LivroID == leitura.LivroID {
			return gorm.ErrDuplicatedKey
		}
	}
	leitura.ID = m.s.id()
	m.s.leituras[leitura.ID] = leitura
	return nil
}

func (m *leituraMock) GetByID(_ context.Context, id uint) (*model.Leitura, error) {
	l, ok := m.s.leituras[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	cp.Livro = m.s.livros[l.LivroID]
	return &cp, nil
}

func (m *leituraMock) GetByUsuarioAndLivro(_ context.Context, usuarioID, livroID uint) (*model.Leitura, error) {
	for _, l := range m.s.leituras {
		if l.UsuarioID == usuarioID && l.LivroID == livroID {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *leituraMock) ListByUsuario(_ context.Context, usuarioID uint) ([]model.Leitura, error) {
	out := make([]model.Leitura, 0)
	for _, id := range sortedKeys(m.s.leituras) {
		l := m.s.leituras[id]
		if l.UsuarioID != usuarioID {
			continue
		}
		cp := *l
		cp.Livro = m.s.livros[l.LivroID]
		out = append(out, cp)
	}
	return out, nil
}

func (m *leituraMock) Update(_ context.Context, leitura *model.Leitura) error {
	if _, ok := m.s.leituras[leitura.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *leitura
	cp.Livro = nil
	m.s.leituras[leitura.ID] = &cp
	return nil
}

func (m *leituraMock) EstatisticasUsuario(_ context.Context, usuarioID uint) (*repository.EstatisticasUsuario, error) {
	stats := &repository.EstatisticasUsuario{}
	var somaProgresso int64
	for _, l := range m.s.leituras {
		if l.UsuarioID != usuarioID {
			continue
		}
		stats.Total++
		somaProgresso += int64(l.Progresso)
		stats.Pontuacao += int64(l.Pontuacao)
		if l.Progresso == 100 {
			stats.Completas++
			if livro := m.s.livros[l.LivroID]; livro != nil && livro.ObraRegional {
				stats.RegionaisCompletas++
			}
		}
	}
	if stats.Total > 0 {
		stats.ProgressoMedio = float64(somaProgresso) / float64(stats.Total)
	}
	return stats, nil
}

func (m *leituraMock) EstatisticasEscola(_ context.Context, escolaID uint) (*repository.EstatisticasEscola, error) {
	stats := &repository.EstatisticasEscola{}
	ativos := make(map[uint]bool)
	var somaPontos, totalLeituras int64
	for _, u := range m.s.usuarios {
		if u.EscolaID != escolaID || u.TipoUsuario != model.TipoAluno {
			continue
		}
		stats.TotalAlunos++
		for _, l := range m.s.leituras {
			if l.UsuarioID != u.ID {
				continue
			}
			ativos[u.ID] = true
			totalLeituras++
			somaPontos += int64(l.Pontuacao)
			if l.Progresso == 100 {
				stats.LivrosCompletos++
			}
		}
	}
	stats.AlunosAtivos = int64(len(ativos))
	if totalLeituras > 0 {
		stats.PontuacaoMedia = float64(somaPontos) / float64(totalLeituras)
	}
	return stats, nil
}

func (m *leituraMock) Ranking(_ context.Context, limit int) ([]repository.RankingRow, error) {
	rows := make([]repository.RankingRow, 0)
	for _, id := range sortedKeys(m.s.usuarios) {
		u := m.s.usuarios[id]
		if u.TipoUsuario != model.TipoAluno {
			continue
		}
		row := repository.RankingRow{UsuarioID: u.ID, Nome: u.Nome}
		for _, l := range m.s.leituras {
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

type atividadeMock struct{ s *store }

func (m *atividadeMock) Create(_ context.Context, atividade *model.AtividadeGamificacao) error {
	atividade.ID = m.s.id()
	m.s.atividades[atividade.ID] = atividade
	return nil
}

func (m *atividadeMock) GetByID(_ context.Context, id uint) (*model.AtividadeGamificacao, error) {
	a, ok := m.s.atividades[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (m *atividadeMock) List(_ context.Context) ([]model.AtividadeGamificacao, error) {
	out := make([]model.AtividadeGamificacao, 0, len(m.s.atividades))
	for _, id := range sortedKeys(m.s.atividades) {
		out = append(out, *m.s.atividades[id])
	}
	return out, nil
}

func (m *atividadeMock) FirstByTipo(_ context.Context, tipo string) (*model.AtividadeGamificacao, error) {
	for _, id := range sortedKeys(m.s.atividades) {
		if m.s.atividades[id].Tipo == tipo {
			return m.s.atividades[id], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type conquistaMock struct{ s *store }

func (m *conquistaMock) Create(_ context.Context, conquista *model.ConquistaUsuario) error {
	key := [2]uint{conquista.UsuarioID, conquista.AtividadeID}
	if _, ok := m.s.conquistas[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.s.conquistas[key] = conquista
	return nil
}

func (m *conquistaMock) Get(_ context.Context, usuarioID, atividadeID uint) (*model.ConquistaUsuario, error) {
	c, ok := m.s.conquistas[[2]uint{usuarioID, atividadeID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *conquistaMock) ListByUsuario(_ context.Context, usuarioID uint) ([]model.ConquistaUsuario, error) {
	out := make([]model.ConquistaUsuario, 0)
	for key, c := range m.s.conquistas {
		if key[0] != usuarioID {
			continue
		}
		cp := *c
		cp.Atividade = m.s.atividades[c.AtividadeID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DataConquista.After(out[j].DataConquista)
	})
	return out, nil
}

type clubeMock struct{ s *store }

func (m *clubeMock) Create(_ context.Context, clube *model.ClubeLeitura) error {
	clube.ID = m.s.id()
	m.s.clubes[clube.ID] = clube
	return nil
}

func (m *clubeMock) GetByID(_ context.Context, id uint) (*model.ClubeLeitura, error) {
	c, ok := m.s.clubes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (m *clubeMock) List(_ context.Context) ([]model.ClubeLeitura, error) {
	out := make([]model.ClubeLeitura, 0, len(m.s.clubes))
	for _, id := range sortedKeys(m.s.clubes) {
		out = append(out, *m.s.clubes[id])
	}
	return out, nil
}

func (m *clubeMock) CountMembros(_ context.Context, clubeID uint) (int64, error) {
	var n int64
	for key := range m.s.membros {
		if key[0] == clubeID {
			n++
		}
	}
	return n, nil
}

func (m *clubeMock) AddMembro(_ context.Context, membro *model.MembroClube) error {
	key := [2]uint{membro.ClubeID, membro.UsuarioID}
	if _, ok := m.s.membros[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.s.membros[key] = membro
	return nil
}

func (m *clubeMock) GetMembro(_ context.Context, clubeID, usuarioID uint) (*model.MembroClube, error) {
	mb, ok := m.s.membros[[2]uint{clubeID, usuarioID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return mb, nil
}

func (m *clubeMock) RemoveMembro(_ context.Context, clubeID, usuarioID uint) error {
	delete(m.s.membros, [2]uint{clubeID, usuarioID})
	return nil
}

func (m *clubeMock) ListMembros(_ context.Context, clubeID uint) ([]model.MembroClube, error) {
	out := make([]model.MembroClube, 0)
	for key, mb := range m.s.membros {
		if key[0] != clubeID {
			continue
		}
		cp := *mb
		cp.Usuario = m.s.usuarios[mb.UsuarioID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UsuarioID < out[j].UsuarioID })
	return out, nil
}

type acompanhamentoMock struct{ s *store }

func (m *acompanhamentoMock) Create(_ context.Context, a *model.AcompanhamentoPedagogico) error {
	a.ID = m.s.id()
	m.s.acompanhamentos[a.ID] = a
	return nil
}

func (m *acompanhamentoMock) ListByAluno(_ context.Context, alunoID uint) ([]model.AcompanhamentoPedagogico, error) {
	out := make([]model.AcompanhamentoPedagogico, 0)
	for _, id := range sortedKeys(m.s.acompanhamentos) {
		a := m.s.acompanhamentos[id]
		if a.AlunoID != alunoID {
			continue
		}
		cp := *a
		cp.Pedagogo = m.s.usuarios[a.PedagogoID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Data.After(out[j].Data) })
	return out, nil
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
