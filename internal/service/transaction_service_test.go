package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhabloC/oakio-backend/internal/models"
)

func TestTransactionServiceCreate(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo)
	userID := uuid.New()

	tx, err := svc.Create(context.Background(), userID, &models.TransactionCreate{
		Title:  "Salário",
		Value:  decimal.NewFromInt(5000),
		Type:   models.TransactionTypeGanho,
		Method: models.PaymentMethodPix,
		Date:   time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Abril", tx.Month)
	assert.NotEqual(t, uuid.Nil, tx.ID)
}

func TestTransactionServiceCreateValidacao(t *testing.T) {
	svc := NewTransactionService(newFakeTransactionRepo())
	userID := uuid.New()
	base := models.TransactionCreate{
		Title:  "Mercado",
		Value:  decimal.NewFromInt(100),
		Type:   models.TransactionTypeGasto,
		Method: models.PaymentMethodCartao,
		Date:   time.Now(),
	}

	semTitulo := base
	semTitulo.Title = "   "
	_, err := svc.Create(context.Background(), userID, &semTitulo)
	assert.ErrorIs(t, err, ErrTitleRequired)

	valorZero := base
	valorZero.Value = decimal.Zero
	_, err = svc.Create(context.Background(), userID, &valorZero)
	assert.ErrorIs(t, err, ErrInvalidValue)

	tipoInvalido := base
	tipoInvalido.Type = "Transferencia"
	_, err = svc.Create(context.Background(), userID, &tipoInvalido)
	assert.ErrorIs(t, err, ErrInvalidTransactionType)

	metodoInvalido := base
	metodoInvalido.Method = "Dinheiro"
	_, err = svc.Create(context.Background(), userID, &metodoInvalido)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestTransactionServiceUpdateRederivaMonth(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo)
	userID := uuid.New()

	tx, err := svc.Create(context.Background(), userID, &models.TransactionCreate{
		Title:  "Internet",
		Value:  decimal.NewFromInt(120),
		Type:   models.TransactionTypeGasto,
		Method: models.PaymentMethodBoleto,
		Date:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Equal(t, "Janeiro", tx.Month)

	novaData := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	tx, err = svc.Update(context.Background(), userID, tx.ID, &models.TransactionUpdate{
		Date: &novaData,
	})
	require.NoError(t, err)
	assert.Equal(t, "Setembro", tx.Month, "mudar a data refaz o mês junto")
}

func TestTransactionServiceResumo(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo)
	userID := uuid.New()

	criar := func(titulo string, valor int64, tipo models.TransactionType) {
		_, err := svc.Create(context.Background(), userID, &models.TransactionCreate{
			Title:  titulo,
			Value:  decimal.NewFromInt(valor),
			Type:   tipo,
			Method: models.PaymentMethodPix,
			Date:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}
	criar("Salário", 4000, models.TransactionTypeGanho)
	criar("Aluguel", 1500, models.TransactionTypeGasto)
	criar("CDB", 500, models.TransactionTypeInvestimento)

	resumo, err := svc.Resumo(context.Background(), userID, "Março")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4000).Equal(resumo.Receita))
	assert.True(t, decimal.NewFromInt(1500).Equal(resumo.Gastos))
	assert.True(t, decimal.NewFromInt(500).Equal(resumo.Investimentos))
	assert.True(t, decimal.NewFromInt(2500).Equal(resumo.Saldo), "investimento não abate o saldo")
}

func TestTransactionServiceOutroUsuario(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo)

	dono := uuid.New()
	tx, err := svc.Create(context.Background(), dono, &models.TransactionCreate{
		Title:  "Luz",
		Value:  decimal.NewFromInt(200),
		Type:   models.TransactionTypeGasto,
		Method: models.PaymentMethodBoleto,
		Date:   time.Now(),
	})
	require.NoError(t, err)

	intruso := uuid.New()
	err = svc.Delete(context.Background(), intruso, tx.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.SetPaga(context.Background(), intruso, tx.ID, true)
	assert.ErrorIs(t, err, ErrNotOwner)
}
