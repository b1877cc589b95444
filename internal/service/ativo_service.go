package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/finance"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/repository"
)

var (
	ErrNomeRequired     = errors.New("nome is required")
	ErrInvalidAtivoTipo = errors.New("invalid ativo tipo")
)

// AlocacaoResumo é a visão consolidada da carteira contra a alocação alvo.
type AlocacaoResumo struct {
	PatrimonioTotal    decimal.Decimal                      `json:"patrimonio_total"`
	TotalInvestido     decimal.Decimal                      `json:"total_investido"`
	LucroPrejuizo      decimal.Decimal                      `json:"lucro_prejuizo"`
	PercentualVariacao float64                              `json:"percentual_variacao"`
	Percentuais        map[models.AtivoTipo]float64         `json:"percentuais"`
	MetaPercentuais    map[models.AtivoTipo]decimal.Decimal `json:"meta_percentuais"`
	Sugestoes          []finance.SugestaoRebalanceamento    `json:"sugestoes"`
}

type AtivoService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.AtivoCreate) (*models.Ativo, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Ativo, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *models.AtivoUpdate) (*models.Ativo, error)
	AddAporte(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Ativo, error)
	SetValorAtual(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Ativo, error)
	ResetInvestimentos(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Alocacao(ctx context.Context, userID uuid.UUID) (*AlocacaoResumo, error)
}

type ativoService struct {
	txManager       repository.TxManager
	ativoRepo       repository.AtivoRepository
	transactionRepo repository.TransactionRepository
	patrimonio      PatrimonioService
}

func NewAtivoService(txManager repository.TxManager, ativoRepo repository.AtivoRepository, transactionRepo repository.TransactionRepository, patrimonio PatrimonioService) AtivoService {
	return &ativoService{
		txManager:       txManager,
		ativoRepo:       ativoRepo,
		transactionRepo: transactionRepo,
		patrimonio:      patrimonio,
	}
}

func (s *ativoService) Create(ctx context.Context, userID uuid.UUID, input *models.AtivoCreate) (*models.Ativo, error) {
	if strings.TrimSpace(input.Nome) == "" {
		return nil, ErrNomeRequired
	}
	if !input.Tipo.Valid() {
		return nil, ErrInvalidAtivoTipo
	}

	dataCompra := input.DataCompra
	if dataCompra.IsZero() {
		dataCompra = time.Now()
	}

	ativo := &models.Ativo{
		UserID:         userID,
		Nome:           input.Nome,
		Ticker:         input.Ticker,
		Tipo:           input.Tipo,
		ValorInvestido: input.ValorInvestido,
		ValorAtual:     input.ValorAtual,
		Quantidade:     input.Quantidade,
		DataCompra:     dataCompra,
		TaxaSelicAnual: input.TaxaSelicAnual,
		Emergencia:     input.Emergencia,
	}
	if err := s.ativoRepo.Create(ctx, ativo); err != nil {
		return nil, err
	}

	if err := s.patrimonio.Snapshot(ctx, userID); err != nil {
		return nil, err
	}

	enrichAtivo(ativo)
	return ativo, nil
}

func (s *ativoService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Ativo, error) {
	ativos, err := s.ativoRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range ativos {
		enrichAtivo(&ativos[i])
	}
	return ativos, nil
}

func (s *ativoService) Update(ctx context.Context, userID, id uuid.UUID, update *models.AtivoUpdate) (*models.Ativo, error) {
	if _, err := s.ownedAtivo(ctx, userID, id); err != nil {
		return nil, err
	}
	if update.Tipo != nil && !update.Tipo.Valid() {
		return nil, ErrInvalidAtivoTipo
	}

	if err := s.ativoRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	if err := s.patrimonio.Snapshot(ctx, userID); err != nil {
		return nil, err
	}

	ativo, err := s.ativoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrichAtivo(ativo)
	return ativo, nil
}

// AddAporte registra o aporte em dois lugares de uma vez: a transação de
// Investimento no fluxo do mês e o acréscimo no ativo. Ou grava os dois
// ou nenhum.
func (s *ativoService) AddAporte(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Ativo, error) {
	if valor.Sign() <= 0 {
		return nil, ErrInvalidValue
	}
	ativo, err := s.ownedAtivo(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		tx := models.NewTransaction(userID, &models.TransactionCreate{
			Title:  "Aporte em " + ativo.Nome,
			Value:  valor,
			Type:   models.TransactionTypeInvestimento,
			Method: models.PaymentMethodPix,
			Date:   time.Now(),
			Paga:   true,
		})
		if err := s.transactionRepo.Create(txCtx, tx); err != nil {
			return err
		}
		return s.ativoRepo.AddAporte(txCtx, id, valor)
	})
	if err != nil {
		return nil, err
	}

	if err := s.patrimonio.Snapshot(ctx, userID); err != nil {
		return nil, err
	}

	ativo, err = s.ativoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrichAtivo(ativo)
	return ativo, nil
}

func (s *ativoService) SetValorAtual(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Ativo, error) {
	if valor.Sign() < 0 {
		return nil, ErrInvalidValue
	}
	if _, err := s.ownedAtivo(ctx, userID, id); err != nil {
		return nil, err
	}

	if err := s.ativoRepo.SetValorAtual(ctx, id, valor); err != nil {
		return nil, err
	}
	if err := s.patrimonio.Snapshot(ctx, userID); err != nil {
		return nil, err
	}

	ativo, err := s.ativoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrichAtivo(ativo)
	return ativo, nil
}

// ResetInvestimentos zera o capital aportado de todos os ativos do
// usuário, mantendo o valor de mercado. Usado na virada de ciclo de aportes.
func (s *ativoService) ResetInvestimentos(ctx context.Context, userID uuid.UUID) error {
	ativos, err := s.ativoRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		for _, a := range ativos {
			if err := s.ativoRepo.ResetInvestimentos(txCtx, a.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ativoService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownedAtivo(ctx, userID, id); err != nil {
		return err
	}
	if err := s.ativoRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.patrimonio.Snapshot(ctx, userID)
}

func (s *ativoService) Alocacao(ctx context.Context, userID uuid.UUID) (*AlocacaoResumo, error) {
	ativos, err := s.ativoRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AlocacaoResumo{
		PatrimonioTotal:    finance.PatrimonioTotal(ativos),
		TotalInvestido:     finance.TotalInvestido(ativos),
		LucroPrejuizo:      finance.LucroPrejuizo(ativos),
		PercentualVariacao: finance.PercentualVariacao(ativos),
		Percentuais:        finance.AlocacaoPercentuais(ativos),
		MetaPercentuais:    finance.MetaAlocacao,
		Sugestoes:          finance.SugestoesRebalanceamento(ativos),
	}, nil
}

func (s *ativoService) ownedAtivo(ctx context.Context, userID, id uuid.UUID) (*models.Ativo, error) {
	ativo, err := s.ativoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ativo.UserID != userID {
		return nil, ErrNotOwner
	}
	return ativo, nil
}

func enrichAtivo(a *models.Ativo) {
	a.Lucro = a.ValorAtual.Sub(a.ValorInvestido)
	if a.ValorInvestido.Sign() > 0 {
		a.Rentabilidade = a.Lucro.Div(a.ValorInvestido).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
}
