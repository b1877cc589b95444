package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/PhabloC/oakio-backend/internal/finance"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/repository"
)

type PatrimonioService interface {
	// Snapshot recalcula o patrimônio total e grava (ou sobrescreve) a
	// linha do mês corrente. Chamado depois de qualquer mutação de ativo.
	Snapshot(ctx context.Context, userID uuid.UUID) error
	Historico(ctx context.Context, userID uuid.UUID) ([]models.PatrimonioSnapshot, error)
}

type patrimonioService struct {
	patrimonioRepo repository.PatrimonioRepository
	ativoRepo      repository.AtivoRepository
}

func NewPatrimonioService(patrimonioRepo repository.PatrimonioRepository, ativoRepo repository.AtivoRepository) PatrimonioService {
	return &patrimonioService{
		patrimonioRepo: patrimonioRepo,
		ativoRepo:      ativoRepo,
	}
}

func (s *patrimonioService) Snapshot(ctx context.Context, userID uuid.UUID) error {
	ativos, err := s.ativoRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	agora := time.Now()
	return s.patrimonioRepo.Upsert(ctx, &models.PatrimonioSnapshot{
		UserID:          userID,
		Mes:             models.MonthName(agora),
		Ano:             agora.Year(),
		TotalPatrimonio: finance.PatrimonioTotal(ativos),
	})
}

func (s *patrimonioService) Historico(ctx context.Context, userID uuid.UUID) ([]models.PatrimonioSnapshot, error) {
	snapshots, err := s.patrimonioRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// a ordenação cronológica precisa do número do mês, que só existe
	// traduzindo o nome de volta
	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].Ano != snapshots[j].Ano {
			return snapshots[i].Ano < snapshots[j].Ano
		}
		mi, _ := models.MonthNumber(snapshots[i].Mes)
		mj, _ := models.MonthNumber(snapshots[j].Mes)
		return mi < mj
	})
	return snapshots, nil
}
