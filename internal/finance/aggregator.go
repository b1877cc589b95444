package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

// ResumoMes é o agregado exibido nos cards do topo do dashboard.
type ResumoMes struct {
	Receita       decimal.Decimal `json:"receita"`
	Gastos        decimal.Decimal `json:"gastos"`
	Investimentos decimal.Decimal `json:"investimentos"`
	// Saldo = Receita - Gastos. Investimentos ficam fora de propósito:
	// são capital alocado, não despesa.
	Saldo decimal.Decimal `json:"saldo"`
}

// ResumoDoMes filtra as transações do mês informado (nome capitalizado,
// "Março") e totaliza por tipo. O mês de cada transação é derivado da
// data aqui dentro — o campo Month gravado não é consultado, então uma
// linha com month inconsistente não distorce o agregado.
//
// Gasto e Investimento podem chegar com sinal trocado dependendo do
// formulário de origem; por isso soma por valor absoluto.
func ResumoDoMes(txs []models.Transaction, mes string) ResumoMes {
	var r ResumoMes
	for _, t := range txs {
		if models.MonthName(t.Date) != mes {
			continue
		}
		switch t.Type {
		case models.TransactionTypeGanho:
			r.Receita = r.Receita.Add(t.Value)
		case models.TransactionTypeGasto:
			r.Gastos = r.Gastos.Add(t.Value.Abs())
		case models.TransactionTypeInvestimento:
			r.Investimentos = r.Investimentos.Add(t.Value.Abs())
		}
	}
	r.Saldo = r.Receita.Sub(r.Gastos)
	return r
}

// DiaBucket é um ponto do gráfico de barras diário.
type DiaBucket struct {
	Dia           int             `json:"dia"`
	Ganhos        decimal.Decimal `json:"ganhos"`
	Gastos        decimal.Decimal `json:"gastos"`
	Investimentos decimal.Decimal `json:"investimentos"`
}

// PorDia agrupa as transações do mês/ano por dia do calendário.
// Retorna um bucket por dia do mês (28–31 conforme o mês e o ano,
// calculado por aritmética de último dia, nada fixo).
func PorDia(txs []models.Transaction, mes string, ano int) []DiaBucket {
	mesNum, ok := models.MonthNumber(mes)
	if !ok {
		return nil
	}

	// dia zero do mês seguinte = último dia deste mês
	ultimoDia := time.Date(ano, mesNum+1, 0, 0, 0, 0, 0, time.UTC).Day()

	buckets := make([]DiaBucket, ultimoDia)
	for i := range buckets {
		buckets[i].Dia = i + 1
	}

	for _, t := range txs {
		if t.Date.Year() != ano || t.Date.Month() != mesNum {
			continue
		}
		b := &buckets[t.Date.Day()-1]
		switch t.Type {
		case models.TransactionTypeGanho:
			b.Ganhos = b.Ganhos.Add(t.Value)
		case models.TransactionTypeGasto:
			b.Gastos = b.Gastos.Add(t.Value.Abs())
		case models.TransactionTypeInvestimento:
			b.Investimentos = b.Investimentos.Add(t.Value.Abs())
		}
	}
	return buckets
}

// MesBucket é um ponto da visão anual (um por mês do calendário).
type MesBucket struct {
	Mes           string          `json:"mes"`
	Receita       decimal.Decimal `json:"receita"`
	Gastos        decimal.Decimal `json:"gastos"`
	Investimentos decimal.Decimal `json:"investimentos"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// PorMes produz os doze meses do ano informado, inclusive os vazios,
// para a comparação ano a ano.
func PorMes(txs []models.Transaction, ano int) []MesBucket {
	buckets := make([]MesBucket, 12)
	for i := range buckets {
		buckets[i].Mes = models.MonthName(time.Date(ano, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC))
	}

	for _, t := range txs {
		if t.Date.Year() != ano {
			continue
		}
		b := &buckets[int(t.Date.Month())-1]
		switch t.Type {
		case models.TransactionTypeGanho:
			b.Receita = b.Receita.Add(t.Value)
		case models.TransactionTypeGasto:
			b.Gastos = b.Gastos.Add(t.Value.Abs())
		case models.TransactionTypeInvestimento:
			b.Investimentos = b.Investimentos.Add(t.Value.Abs())
		}
	}

	for i := range buckets {
		buckets[i].Saldo = buckets[i].Receita.Sub(buckets[i].Gastos)
	}
	return buckets
}
