package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhabloC/oakio-backend/internal/models"
)

func divida(total, pago float64) models.Divida {
	return models.Divida{
		TotalValue: decimal.NewFromFloat(total),
		PaidValue:  decimal.NewFromFloat(pago),
	}
}

func TestProgressoDivida(t *testing.T) {
	assert.InDelta(t, 50.0, ProgressoDivida(divida(1000, 500)), 0.0001)
	assert.Equal(t, 0.0, ProgressoDivida(divida(0, 500)), "total zero nao divide")
	assert.Equal(t, 100.0, ProgressoDivida(divida(1000, 1500)), "teto em 100")
}

func TestRestanteDivida(t *testing.T) {
	assert.True(t, RestanteDivida(divida(1000, 300)).Equal(decimal.NewFromInt(700)))
}

func TestDividaVencida(t *testing.T) {
	agora := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	ontem := agora.AddDate(0, 0, -1)
	amanha := agora.AddDate(0, 0, 1)

	d := divida(1000, 0)
	assert.False(t, DividaVencida(d, agora), "sem vencimento")

	d.DueDate = &ontem
	assert.True(t, DividaVencida(d, agora))

	d.IsPaid = true
	assert.False(t, DividaVencida(d, agora), "quitada nunca esta vencida")

	d.IsPaid = false
	d.DueDate = &amanha
	assert.False(t, DividaVencida(d, agora))

	// comparação só de data: vence hoje não é vencida
	hoje := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	d.DueDate = &hoje
	assert.False(t, DividaVencida(d, agora))
}

func TestAplicarPagamento(t *testing.T) {
	agora := time.Now()

	t.Run("parcial soma sem quitar", func(t *testing.T) {
		d := AplicarPagamento(divida(1000, 200), decimal.NewFromInt(300), agora)
		assert.True(t, d.PaidValue.Equal(decimal.NewFromInt(500)))
		assert.False(t, d.IsPaid)
		assert.Nil(t, d.PaidAt)
	})

	t.Run("pagamento que alcanca o total quita automaticamente", func(t *testing.T) {
		d := AplicarPagamento(divida(1000, 800), decimal.NewFromInt(200), agora)
		assert.True(t, d.IsPaid)
		require.NotNil(t, d.PaidAt)
		assert.Equal(t, agora, *d.PaidAt)
	})
}

func TestQuitarDivida_ClampEIdempotencia(t *testing.T) {
	agora := time.Now()

	// quitar com 80% pago fecha exatamente no total, nunca passa
	d := QuitarDivida(divida(1000, 800), agora)
	assert.True(t, d.PaidValue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, d.IsPaid)
	require.NotNil(t, d.PaidAt)

	// quitar de novo não mexe no carimbo
	primeiro := *d.PaidAt
	d = QuitarDivida(d, agora.Add(time.Hour))
	assert.True(t, d.PaidValue.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, primeiro, *d.PaidAt)
}
