package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhabloC/oakio-backend/internal/models"
)

func tx(tipo models.TransactionType, valor float64, data string) models.Transaction {
	d, err := time.Parse("2006-01-02", data)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Type:  tipo,
		Value: decimal.NewFromFloat(valor),
		Date:  d,
		Month: models.MonthName(d),
	}
}

func TestResumoDoMes_CenarioMarco(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TransactionTypeGanho, 1000, "2025-03-05"),
		tx(models.TransactionTypeGasto, 300, "2025-03-10"),
		tx(models.TransactionTypeInvestimento, 200, "2025-03-15"),
	}

	r := ResumoDoMes(txs, "Março")

	assert.True(t, r.Receita.Equal(decimal.NewFromInt(1000)))
	assert.True(t, r.Gastos.Equal(decimal.NewFromInt(300)))
	assert.True(t, r.Investimentos.Equal(decimal.NewFromInt(200)))
	assert.True(t, r.Saldo.Equal(decimal.NewFromInt(700)), "saldo = receita - gastos, investimento fica fora")
}

func TestResumoDoMes_NormalizaSinalDeSaida(t *testing.T) {
	// formulários antigos gravavam Gasto/Investimento com sinal negativo
	txs := []models.Transaction{
		tx(models.TransactionTypeGasto, -250, "2025-03-02"),
		tx(models.TransactionTypeGasto, 50, "2025-03-03"),
		tx(models.TransactionTypeInvestimento, -100, "2025-03-04"),
	}

	r := ResumoDoMes(txs, "Março")

	assert.True(t, r.Gastos.Equal(decimal.NewFromInt(300)))
	assert.True(t, r.Investimentos.Equal(decimal.NewFromInt(100)))
}

func TestResumoDoMes_DerivaMesDaData(t *testing.T) {
	// linha com month gravado inconsistente não distorce o agregado
	inconsistente := tx(models.TransactionTypeGanho, 500, "2025-04-01")
	inconsistente.Month = "Março"

	r := ResumoDoMes([]models.Transaction{inconsistente}, "Março")
	assert.True(t, r.Receita.IsZero())

	r = ResumoDoMes([]models.Transaction{inconsistente}, "Abril")
	assert.True(t, r.Receita.Equal(decimal.NewFromInt(500)))
}

func TestResumoDoMes_IdempotenteEIndependenteDeOrdem(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TransactionTypeGanho, 1000, "2025-03-05"),
		tx(models.TransactionTypeGasto, 300, "2025-03-10"),
		tx(models.TransactionTypeInvestimento, 200, "2025-03-15"),
	}
	invertido := []models.Transaction{txs[2], txs[1], txs[0]}

	primeira := ResumoDoMes(txs, "Março")
	segunda := ResumoDoMes(txs, "Março")
	fora := ResumoDoMes(invertido, "Março")

	assert.Equal(t, primeira, segunda)
	assert.Equal(t, primeira, fora)
}

func TestPorDia_DiasDoMes(t *testing.T) {
	cases := []struct {
		mes  string
		ano  int
		dias int
	}{
		{"Janeiro", 2025, 31},
		{"Fevereiro", 2025, 28},
		{"Fevereiro", 2024, 29}, // bissexto
		{"Abril", 2025, 30},
	}
	for _, tc := range cases {
		buckets := PorDia(nil, tc.mes, tc.ano)
		require.Len(t, buckets, tc.dias, "%s/%d", tc.mes, tc.ano)
		assert.Equal(t, 1, buckets[0].Dia)
		assert.Equal(t, tc.dias, buckets[len(buckets)-1].Dia)
	}
}

func TestPorDia_AgrupaPorDia(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TransactionTypeGanho, 100, "2025-03-01"),
		tx(models.TransactionTypeGanho, 50, "2025-03-01"),
		tx(models.TransactionTypeGasto, -30, "2025-03-15"),
		tx(models.TransactionTypeGanho, 999, "2025-04-01"), // outro mês, fora
	}

	buckets := PorDia(txs, "Março", 2025)
	require.Len(t, buckets, 31)

	assert.True(t, buckets[0].Ganhos.Equal(decimal.NewFromInt(150)))
	assert.True(t, buckets[14].Gastos.Equal(decimal.NewFromInt(30)))
	assert.True(t, buckets[30].Ganhos.IsZero())
}

func TestPorDia_MesInvalido(t *testing.T) {
	assert.Nil(t, PorDia(nil, "Smarch", 2025))
}

func TestPorMes_DozeMeses(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TransactionTypeGanho, 1000, "2025-01-10"),
		tx(models.TransactionTypeGasto, 400, "2025-01-20"),
		tx(models.TransactionTypeGanho, 2000, "2025-12-31"),
		tx(models.TransactionTypeGanho, 777, "2024-06-15"), // outro ano, fora
	}

	buckets := PorMes(txs, 2025)
	require.Len(t, buckets, 12)

	assert.Equal(t, "Janeiro", buckets[0].Mes)
	assert.True(t, buckets[0].Saldo.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, "Dezembro", buckets[11].Mes)
	assert.True(t, buckets[11].Receita.Equal(decimal.NewFromInt(2000)))
	assert.True(t, buckets[5].Receita.IsZero(), "Junho de 2024 não entra em 2025")
}
