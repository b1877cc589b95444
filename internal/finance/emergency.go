package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

// StatusReserva é o estado da reserva de emergência exibido na página.
type StatusReserva struct {
	GastoMensal      decimal.Decimal `json:"gasto_mensal"`
	ReservaMeses     int             `json:"reserva_meses"`
	Alvo             decimal.Decimal `json:"alvo"`
	ReservaAtual     decimal.Decimal `json:"reserva_atual"`
	ProgressoPercent float64         `json:"progresso_percent"`
}

// GastoMensalMedio resolve o gasto mensal de referência: o valor manual
// quando informado (> 0), senão a média dos últimos 6 meses de Gastos em
// valor absoluto. Meses sem nenhuma transação de gasto ficam fora do
// denominador — não entram como zero. (Ambiguidade conhecida: um mês
// genuinamente sem gastos e um mês sem dados são indistinguíveis aqui;
// o comportamento é preservado de propósito.)
func GastoMensalMedio(txs []models.Transaction, manual decimal.Decimal, agora time.Time) decimal.Decimal {
	if manual.Sign() > 0 {
		return manual
	}

	// janela dos 6 meses-calendário terminando no mês corrente;
	// ancora no dia 1 para AddDate não derrapar em fim de mês
	base := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.UTC)

	total := decimal.Zero
	mesesComGasto := 0
	for i := 0; i < 6; i++ {
		ref := base.AddDate(0, -i, 0)
		soma := decimal.Zero
		achou := false
		for _, t := range txs {
			if t.Type != models.TransactionTypeGasto {
				continue
			}
			if t.Date.Year() != ref.Year() || t.Date.Month() != ref.Month() {
				continue
			}
			soma = soma.Add(t.Value.Abs())
			achou = true
		}
		if achou {
			total = total.Add(soma)
			mesesComGasto++
		}
	}

	if mesesComGasto == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(mesesComGasto)))
}

// ReservaAlvo = gasto mensal × meses de reserva (6 ou 12).
func ReservaAlvo(gastoMensal decimal.Decimal, reservaMeses int) decimal.Decimal {
	return gastoMensal.Mul(decimal.NewFromInt(int64(reservaMeses)))
}

// ReservaAtual soma o valor atual dos ativos marcados como emergência.
func ReservaAtual(ativos []models.Ativo) decimal.Decimal {
	total := decimal.Zero
	for _, a := range ativos {
		if a.Emergencia {
			total = total.Add(a.ValorAtual)
		}
	}
	return total
}

// ProgressoReserva em %, limitado a 100. Zero quando não há alvo.
func ProgressoReserva(reserva, alvo decimal.Decimal) float64 {
	if alvo.Sign() <= 0 {
		return 0
	}
	p := reserva.Div(alvo).Mul(cem).InexactFloat64()
	if p > 100 {
		return 100
	}
	return p
}

// Reserva monta o status completo a partir das coleções e preferências.
func Reserva(txs []models.Transaction, ativos []models.Ativo, prefs *models.Preferencias, agora time.Time) StatusReserva {
	gasto := GastoMensalMedio(txs, prefs.GastoMensalManual, agora)
	alvo := ReservaAlvo(gasto, prefs.ReservaMeses)
	atual := ReservaAtual(ativos)
	return StatusReserva{
		GastoMensal:      gasto,
		ReservaMeses:     prefs.ReservaMeses,
		Alvo:             alvo,
		ReservaAtual:     atual,
		ProgressoPercent: ProgressoReserva(atual, alvo),
	}
}
