package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/PhabloC/oakio-backend/internal/finance"
	"github.com/PhabloC/oakio-backend/internal/models"
	"github.com/PhabloC/oakio-backend/internal/repository"
)

var (
	ErrTitleRequired          = errors.New("title is required")
	ErrInvalidValue           = errors.New("value must be greater than zero")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrNotOwner               = errors.New("resource does not belong to user")
)

type TransactionService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.TransactionCreate) (*models.Transaction, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *models.TransactionUpdate) (*models.Transaction, error)
	SetPaga(ctx context.Context, userID, id uuid.UUID, paga bool) error
	Delete(ctx context.Context, userID, id uuid.UUID) error

	Resumo(ctx context.Context, userID uuid.UUID, mes string) (finance.ResumoMes, error)
	PorDia(ctx context.Context, userID uuid.UUID, mes string, ano int) ([]finance.DiaBucket, error)
	PorMes(ctx context.Context, userID uuid.UUID, ano int) ([]finance.MesBucket, error)
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
}

func NewTransactionService(transactionRepo repository.TransactionRepository) TransactionService {
	return &transactionService{transactionRepo: transactionRepo}
}

func (s *transactionService) Create(ctx context.Context, userID uuid.UUID, input *models.TransactionCreate) (*models.Transaction, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.Value.Sign() <= 0 {
		return nil, ErrInvalidValue
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if !input.Method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	tx := models.NewTransaction(userID, input)
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return s.transactionRepo.GetByUserID(ctx, userID)
}

// Update carrega a transação, aplica os campos informados e regrava
// inteira. Se a data mudar, Month é derivado de novo — nunca fica defasado.
func (s *transactionService) Update(ctx context.Context, userID, id uuid.UUID, update *models.TransactionUpdate) (*models.Transaction, error) {
	tx, err := s.ownedTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, ErrTitleRequired
		}
		tx.Title = *update.Title
	}
	if update.Value != nil {
		if update.Value.Sign() <= 0 {
			return nil, ErrInvalidValue
		}
		tx.Value = *update.Value
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, ErrInvalidTransactionType
		}
		tx.Type = *update.Type
	}
	if update.Method != nil {
		if !update.Method.Valid() {
			return nil, ErrInvalidPaymentMethod
		}
		tx.Method = *update.Method
	}
	if update.Date != nil {
		tx.Date = *update.Date
		tx.Month = models.MonthName(*update.Date)
	}
	if update.Category != nil {
		tx.Category = update.Category
	}
	if update.Description != nil {
		tx.Description = update.Description
	}

	if err := s.transactionRepo.Update(ctx, id, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) SetPaga(ctx context.Context, userID, id uuid.UUID, paga bool) error {
	if _, err := s.ownedTransaction(ctx, userID, id); err != nil {
		return err
	}
	return s.transactionRepo.SetPaga(ctx, id, paga)
}

func (s *transactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownedTransaction(ctx, userID, id); err != nil {
		return err
	}
	return s.transactionRepo.Delete(ctx, id)
}

func (s *transactionService) Resumo(ctx context.Context, userID uuid.UUID, mes string) (finance.ResumoMes, error) {
	txs, err := s.transactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return finance.ResumoMes{}, err
	}
	return finance.ResumoDoMes(txs, mes), nil
}

func (s *transactionService) PorDia(ctx context.Context, userID uuid.UUID, mes string, ano int) ([]finance.DiaBucket, error) {
	txs, err := s.transactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return finance.PorDia(txs, mes, ano), nil
}

func (s *transactionService) PorMes(ctx context.Context, userID uuid.UUID, ano int) ([]finance.MesBucket, error) {
	txs, err := s.transactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return finance.PorMes(txs, ano), nil
}

func (s *transactionService) ownedTransaction(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.UserID != userID {
		return nil, ErrNotOwner
	}
	return tx, nil
}
