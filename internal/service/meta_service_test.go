package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhabloC/oakio-backend/internal/config"
	"github.com/PhabloC/oakio-backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		MetaLimiteViavel:       decimal.NewFromInt(2000),
		MetaLimiteComprometida: decimal.NewFromInt(5000),
	}
}

func TestMetaServiceAddMoneyNaoConclui(t *testing.T) {
	repo := newFakeMetaRepo()
	svc := NewMetaService(repo, testConfig())
	userID := uuid.New()

	meta, err := svc.Create(context.Background(), userID, &models.MetaCreate{
		Title:       "Viagem",
		TargetValue: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	// passa dos 100% e mesmo assim a meta continua aberta
	meta, err = svc.AddMoney(context.Background(), userID, meta.ID, decimal.NewFromInt(1500))
	require.NoError(t, err)
	assert.False(t, meta.Completed, "guardar dinheiro nunca conclui a meta sozinho")
	assert.Equal(t, 100.0, meta.Progress)
	assert.True(t, meta.SuggestCompleted, "100% de meta aberta vira sugestão de conclusão")
}

func TestMetaServiceCompleteEReopen(t *testing.T) {
	repo := newFakeMetaRepo()
	svc := NewMetaService(repo, testConfig())
	userID := uuid.New()

	meta, err := svc.Create(context.Background(), userID, &models.MetaCreate{
		Title:       "Reserva",
		TargetValue: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	meta, err = svc.Complete(context.Background(), userID, meta.ID)
	require.NoError(t, err)
	assert.True(t, meta.Completed)
	require.NotNil(t, meta.CompletedAt)
	assert.False(t, meta.SuggestCompleted, "meta concluída não recebe sugestão")

	meta, err = svc.Reopen(context.Background(), userID, meta.ID)
	require.NoError(t, err)
	assert.False(t, meta.Completed)
	assert.Nil(t, meta.CompletedAt)
}

func TestMetaServiceEnriquecimento(t *testing.T) {
	repo := newFakeMetaRepo()
	svc := NewMetaService(repo, testConfig())
	userID := uuid.New()

	// 365 dias exatos: ceil(365/30.44) = 12, independente de ano bissexto
	deadline := time.Now().AddDate(0, 0, 365)
	meta, err := svc.Create(context.Background(), userID, &models.MetaCreate{
		Title:       "Carro",
		TargetValue: decimal.NewFromInt(24000),
		Deadline:    &deadline,
	})
	require.NoError(t, err)

	require.NotNil(t, meta.MonthsRemaining)
	assert.Equal(t, 12, *meta.MonthsRemaining)
	require.NotNil(t, meta.RequiredMonthly)
	assert.True(t, decimal.NewFromInt(2000).Equal(*meta.RequiredMonthly))
	assert.Equal(t, "viavel", meta.Feasibility, "2000/mês fica exatamente no limite viável")
}

func TestMetaServiceSemPrazo(t *testing.T) {
	repo := newFakeMetaRepo()
	svc := NewMetaService(repo, testConfig())
	userID := uuid.New()

	meta, err := svc.Create(context.Background(), userID, &models.MetaCreate{
		Title:       "Algum dia",
		TargetValue: decimal.NewFromInt(10000),
	})
	require.NoError(t, err)

	assert.Nil(t, meta.MonthsRemaining)
	assert.Nil(t, meta.RequiredMonthly)
	assert.Equal(t, "indefinida", meta.Feasibility)
}

func TestMetaServiceValidacao(t *testing.T) {
	svc := NewMetaService(newFakeMetaRepo(), testConfig())
	userID := uuid.New()

	_, err := svc.Create(context.Background(), userID, &models.MetaCreate{
		Title:       "",
		TargetValue: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create(context.Background(), userID, &models.MetaCreate{
		Title:       "Sem alvo",
		TargetValue: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidTargetValue)

	meta, err := svc.Create(context.Background(), userID, &models.MetaCreate{
		Title:       "Ok",
		TargetValue: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = svc.AddMoney(context.Background(), userID, meta.ID, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
