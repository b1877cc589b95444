package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/PhabloC/oakio-backend/internal/finance"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/repository"
)

// Dashboard é o payload consolidado da tela inicial: cards do mês,
// reserva, carteira e contagens de metas e dívidas numa resposta só.
type Dashboard struct {
	Resumo             finance.ResumoMes     `json:"resumo"`
	Reserva            finance.StatusReserva `json:"reserva"`
	PatrimonioTotal    decimal.Decimal       `json:"patrimonio_total"`
	LucroPrejuizo      decimal.Decimal       `json:"lucro_prejuizo"`
	PercentualVariacao float64               `json:"percentual_variacao"`
	MetasAbertas       int                   `json:"metas_abertas"`
	MetasConcluidas    int                   `json:"metas_concluidas"`
	DividasEmAberto    int                   `json:"dividas_em_aberto"`
	TotalDevido        decimal.Decimal       `json:"total_devido"`
	ValoresOcultos     bool                  `json:"valores_ocultos"`
}

type DashboardService interface {
	Get(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
	Reserva(ctx context.Context, userID uuid.UUID) (*finance.StatusReserva, error)
}

type dashboardService struct {
	repos *repository.Repositories
}

func NewDashboardService(repos *repository.Repositories) DashboardService {
	return &dashboardService{repos: repos}
}

// Get busca as cinco coleções em paralelo; qualquer erro derruba a
// resposta inteira (payload parcial no dashboard engana mais do que ajuda).
func (s *dashboardService) Get(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	var (
		txs     []models.Transaction
		ativos  []models.Ativo
		metas   []models.Meta
		dividas []models.Divida
		prefs   *models.Preferencias
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.repos.Transaction.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		ativos, err = s.repos.Ativo.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		metas, err = s.repos.Meta.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		dividas, err = s.repos.Divida.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		prefs, err = s.repos.Preferencia.Get(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	agora := time.Now()
	d := &Dashboard{
		Resumo:             finance.ResumoDoMes(txs, models.MonthName(agora)),
		Reserva:            finance.Reserva(txs, ativos, prefs, agora),
		PatrimonioTotal:    finance.PatrimonioTotal(ativos),
		LucroPrejuizo:      finance.LucroPrejuizo(ativos),
		PercentualVariacao: finance.PercentualVariacao(ativos),
		ValoresOcultos:     prefs.ValoresOcultos,
	}

	for _, m := range metas {
		if m.Completed {
			d.MetasConcluidas++
		} else {
			d.MetasAbertas++
		}
	}
	for _, dv := range dividas {
		if !dv.IsPaid {
			d.DividasEmAberto++
			d.TotalDevido = d.TotalDevido.Add(finance.RestanteDivida(dv))
		}
	}
	return d, nil
}

// Reserva monta só o status da reserva de emergência, para a página dedicada.
func (s *dashboardService) Reserva(ctx context.Context, userID uuid.UUID) (*finance.StatusReserva, error) {
	var (
		txs    []models.Transaction
		ativos []models.Ativo
		prefs  *models.Preferencias
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.repos.Transaction.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		ativos, err = s.repos.Ativo.GetByUserID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		prefs, err = s.repos.Preferencia.Get(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	status := finance.Reserva(txs, ativos, prefs, time.Now())
	return &status, nil
}
