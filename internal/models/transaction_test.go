package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Janeiro", MonthName(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Março", MonthName(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dezembro", MonthName(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestMonthNumber(t *testing.T) {
	m, ok := MonthNumber("Fevereiro")
	require.True(t, ok)
	assert.Equal(t, time.February, m)

	_, ok = MonthNumber("fevereiro")
	assert.False(t, ok, "nome fora do formato capitalizado não resolve")

	_, ok = MonthNumber("March")
	assert.False(t, ok)
}

func TestMonthNameRoundTrip(t *testing.T) {
	for mes := 1; mes <= 12; mes++ {
		data := time.Date(2025, time.Month(mes), 10, 0, 0, 0, 0, time.UTC)
		num, ok := MonthNumber(MonthName(data))
		require.True(t, ok)
		assert.Equal(t, time.Month(mes), num)
	}
}

func TestNewTransactionDerivaMonth(t *testing.T) {
	userID := uuid.New()
	tx := NewTransaction(userID, &TransactionCreate{
		Title:  "Mercado",
		Value:  decimal.NewFromInt(250),
		Type:   TransactionTypeGasto,
		Method: PaymentMethodPix,
		Date:   time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, userID, tx.UserID)
	assert.Equal(t, "Julho", tx.Month, "Month sai sempre da data")
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TransactionTypeGanho.Valid())
	assert.True(t, TransactionTypeGasto.Valid())
	assert.True(t, TransactionTypeInvestimento.Valid())
	assert.False(t, TransactionType("Transferencia").Valid())
	assert.False(t, TransactionType("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodBoleto.Valid())
	assert.True(t, PaymentMethodPix.Valid())
	assert.True(t, PaymentMethodCartao.Valid())
	assert.False(t, PaymentMethod("Dinheiro").Valid())
}
