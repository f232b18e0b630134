package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"minasle/backend/internal/repository"
)

// ExportService produces the XLSX exports served by the admin console.
type ExportService interface {
	ExportUsuarios(ctx context.Context) (*bytes.Buffer, error)
}

type exportService struct {
	repo *repository.Repository
}

// NewExportService creates the ExportService.
func NewExportService(repo *repository.Repository) ExportService {
	return &exportService{repo: repo}
}

// ExportUsuarios renders every user with their reading totals as a
// spreadsheet, one row per user.
func (s *exportService) ExportUsuarios(ctx context.Context) (*bytes.Buffer, error) {
	usuarios, err := s.repo.Usuario.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Usuarios"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Nome", "Email", "Tipo", "Escola", "Leituras", "Completas", "Pontuação"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i := range usuarios {
		u := &usuarios[i]

		stats, err := s.repo.Leitura.EstatisticasUsuario(ctx, u.ID)
		if err != nil {
			return nil, err
		}

		escola := ""
		if u.Escola != nil {
			escola = u.Escola.Nome
		}

		row := i + 2
		values := []interface{}{
			u.ID, u.Nome, u.Email, u.TipoUsuario, escola,
			stats.Total, stats.Completas, stats.Pontuacao,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar planilha: %w", err)
	}
	return buf, nil
}
