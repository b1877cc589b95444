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

var ErrInvalidTotalValue = errors.New("total value must be greater than zero")

type DividaService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.DividaCreate) (*models.Divida, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Divida, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *models.DividaUpdate) (*models.Divida, error)
	RegistrarPagamento(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Divida, error)
	Quitar(ctx context.Context, userID, id uuid.UUID) (*models.Divida, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type dividaService struct {
	dividaRepo repository.DividaRepository
}

func NewDividaService(dividaRepo repository.DividaRepository) DividaService {
	return &dividaService{dividaRepo: dividaRepo}
}

func (s *dividaService) Create(ctx context.Context, userID uuid.UUID, input *models.DividaCreate) (*models.Divida, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.TotalValue.Sign() <= 0 {
		return nil, ErrInvalidTotalValue
	}
	if input.PaidValue.Sign() < 0 {
		return nil, ErrInvalidValue
	}

	divida := &models.Divida{
		UserID:      userID,
		Title:       input.Title,
		TotalValue:  input.TotalValue,
		PaidValue:   input.PaidValue,
		DueDate:     input.DueDate,
		Creditor:    input.Creditor,
		Category:    input.Category,
		Description: input.Description,
		IsPaid:      input.PaidValue.GreaterThanOrEqual(input.TotalValue),
	}
	if err := s.dividaRepo.Create(ctx, divida); err != nil {
		return nil, err
	}

	enrichDivida(divida, time.Now())
	return divida, nil
}

func (s *dividaService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Divida, error) {
	dividas, err := s.dividaRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	agora := time.Now()
	for i := range dividas {
		enrichDivida(&dividas[i], agora)
	}
	return dividas, nil
}

func (s *dividaService) Update(ctx context.Context, userID, id uuid.UUID, update *models.DividaUpdate) (*models.Divida, error) {
	if _, err := s.ownedDivida(ctx, userID, id); err != nil {
		return nil, err
	}
	if update.TotalValue != nil && update.TotalValue.Sign() <= 0 {
		return nil, ErrInvalidTotalValue
	}

	if err := s.dividaRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

// RegistrarPagamento valida o valor antes de qualquer efeito colateral;
// a quitação automática ao alcançar o total fica na regra pura.
func (s *dividaService) RegistrarPagamento(ctx context.Context, userID, id uuid.UUID, valor decimal.Decimal) (*models.Divida, error) {
	if valor.Sign() <= 0 {
		return nil, ErrInvalidValue
	}
	divida, err := s.ownedDivida(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	atualizada := finance.AplicarPagamento(*divida, valor, time.Now())
	if err := s.dividaRepo.SetPagamento(ctx, id, atualizada.PaidValue, atualizada.IsPaid, atualizada.PaidAt); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *dividaService) Quitar(ctx context.Context, userID, id uuid.UUID) (*models.Divida, error) {
	divida, err := s.ownedDivida(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	quitada := finance.QuitarDivida(*divida, time.Now())
	if err := s.dividaRepo.SetPagamento(ctx, id, quitada.PaidValue, quitada.IsPaid, quitada.PaidAt); err != nil {
		return nil, err
	}
	return s.reload(ctx, id)
}

func (s *dividaService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownedDivida(ctx, userID, id); err != nil {
		return err
	}
	return s.dividaRepo.Delete(ctx, id)
}

func (s *dividaService) reload(ctx context.Context, id uuid.UUID) (*models.Divida, error) {
	divida, err := s.dividaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	enrichDivida(divida, time.Now())
	return divida, nil
}

func (s *dividaService) ownedDivida(ctx context.Context, userID, id uuid.UUID) (*models.Divida, error) {
	divida, err := s.dividaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if divida.UserID != userID {
		return nil, ErrNotOwner
	}
	return divida, nil
}

func enrichDivida(d *models.Divida, agora time.Time) {
	d.Progress = finance.ProgressoDivida(*d)
	d.Remaining = finance.RestanteDivida(*d)
	d.Overdue = finance.DividaVencida(*d, agora)
}
