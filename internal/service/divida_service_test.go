package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhabloC/oakio-backend/internal/models"
)

func TestDividaServiceRegistrarPagamento(t *testing.T) {
	repo := newFakeDividaRepo()
	svc := NewDividaService(repo)
	userID := uuid.New()

	divida, err := svc.Create(context.Background(), userID, &models.DividaCreate{
		Title:      "Financiamento",
		TotalValue: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.False(t, divida.IsPaid)

	divida, err = svc.RegistrarPagamento(context.Background(), userID, divida.ID, decimal.NewFromInt(400))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(400).Equal(divida.PaidValue))
	assert.False(t, divida.IsPaid)
	assert.InDelta(t, 40.0, divida.Progress, 0.001)
	assert.True(t, decimal.NewFromInt(600).Equal(divida.Remaining))

	// pagando o resto quita automaticamente
	divida, err = svc.RegistrarPagamento(context.Background(), userID, divida.ID, decimal.NewFromInt(600))
	require.NoError(t, err)
	assert.True(t, divida.IsPaid)
	require.NotNil(t, divida.PaidAt)
}

func TestDividaServicePagamentoInvalido(t *testing.T) {
	repo := newFakeDividaRepo()
	svc := NewDividaService(repo)
	userID := uuid.New()

	divida, err := svc.Create(context.Background(), userID, &models.DividaCreate{
		Title:      "Cartão",
		TotalValue: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	_, err = svc.RegistrarPagamento(context.Background(), userID, divida.ID, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = svc.RegistrarPagamento(context.Background(), userID, divida.ID, decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, ErrInvalidValue)

	// nada mudou no repositório
	salva, err := repo.GetByID(context.Background(), divida.ID)
	require.NoError(t, err)
	assert.True(t, salva.PaidValue.IsZero())
}

func TestDividaServiceQuitar(t *testing.T) {
	repo := newFakeDividaRepo()
	svc := NewDividaService(repo)
	userID := uuid.New()

	divida, err := svc.Create(context.Background(), userID, &models.DividaCreate{
		Title:      "Empréstimo",
		TotalValue: decimal.NewFromInt(2000),
		PaidValue:  decimal.NewFromInt(1500),
	})
	require.NoError(t, err)

	quitada, err := svc.Quitar(context.Background(), userID, divida.ID)
	require.NoError(t, err)
	assert.True(t, quitada.IsPaid)
	assert.True(t, quitada.TotalValue.Equal(quitada.PaidValue), "quitar trava o pago no total")
	require.NotNil(t, quitada.PaidAt)

	// idempotente: quitar de novo não troca o carimbo
	primeiro := *quitada.PaidAt
	denovo, err := svc.Quitar(context.Background(), userID, divida.ID)
	require.NoError(t, err)
	assert.Equal(t, primeiro, *denovo.PaidAt)
}

func TestDividaServiceOutroUsuario(t *testing.T) {
	repo := newFakeDividaRepo()
	svc := NewDividaService(repo)

	dono := uuid.New()
	divida, err := svc.Create(context.Background(), dono, &models.DividaCreate{
		Title:      "IPVA",
		TotalValue: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	intruso := uuid.New()
	_, err = svc.RegistrarPagamento(context.Background(), intruso, divida.ID, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrNotOwner)

	err = svc.Delete(context.Background(), intruso, divida.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestDividaServiceCreateValidacao(t *testing.T) {
	svc := NewDividaService(newFakeDividaRepo())
	userID := uuid.New()

	_, err := svc.Create(context.Background(), userID, &models.DividaCreate{
		Title:      "  ",
		TotalValue: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create(context.Background(), userID, &models.DividaCreate{
		Title:      "Sem valor",
		TotalValue: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidTotalValue)
}
